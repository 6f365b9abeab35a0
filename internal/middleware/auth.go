package middleware

import (
	"context"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Identity is the caller as seen by gated operations.
type Identity struct {
	Email string
	Role  string
}

// Authenticator turns a bearer token into an Identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}

// DemoAuthenticator accepts anything and yields the fixed local-dev identity.
type DemoAuthenticator struct{}

func (DemoAuthenticator) Authenticate(context.Context, string) (Identity, error) {
	return Identity{Email: "demo@foodlink.ai", Role: "buyer"}, nil
}

// FirebaseAuthenticator verifies Firebase ID tokens.
type FirebaseAuthenticator struct {
	client *auth.Client
}

func NewFirebaseAuthenticator(ctx context.Context, projectID string) (*FirebaseAuthenticator, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseAuthenticator{client: client}, nil
}

func (a *FirebaseAuthenticator) Authenticate(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, echo.ErrUnauthorized
	}
	decoded, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return Identity{}, echo.ErrUnauthorized
	}
	email, _ := decoded.Claims["email"].(string)
	return Identity{Email: email, Role: "buyer"}, nil
}

// WithIdentity resolves the caller through authn and stores the Identity on
// the request context. Failures short-circuit with 401.
func WithIdentity(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
			ident, err := authn.Authenticate(c.Request().Context(), token)
			if err != nil {
				return echo.ErrUnauthorized
			}
			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// IdentityFrom returns the Identity placed by WithIdentity, if any.
func IdentityFrom(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityKey).(Identity)
	return ident, ok
}
