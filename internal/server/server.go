package server

import (
	"context"
	"net/http"

	"github.com/foodlinkai/foodlink-backend/internal/ai"
	"github.com/foodlinkai/foodlink-backend/internal/config"
	"github.com/foodlinkai/foodlink-backend/internal/handler"
	appmw "github.com/foodlinkai/foodlink-backend/internal/middleware"
	"github.com/foodlinkai/foodlink-backend/internal/paystack"
	"github.com/foodlinkai/foodlink-backend/internal/photo"
	"github.com/foodlinkai/foodlink-backend/internal/repository"
	"github.com/foodlinkai/foodlink-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e          *echo.Echo
	itemRepo   repository.ItemRepository
	eventsRepo repository.PaymentEventRepository
}

// New wires the full HTTP surface. db may be nil at construction time (the
// store may still be coming up); SetDB injects it later and until then the
// data endpoints answer 503 while /health stays green.
func New(cfg *config.Config, db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	itemRepo := repository.NewItemRepository(db)
	itemSvc := service.NewItemService(itemRepo)
	itemHandler := handler.NewItemHandler(itemSvc)

	gateway := paystack.NewClient(cfg.PaystackSecret, nil)
	checkoutSvc := service.NewCheckoutService(gateway, service.DefaultPricer)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc)

	eventsRepo := repository.NewPaymentEventRepository(db)
	var verifier handler.SignatureVerifier
	if gateway.Live() {
		verifier = gateway
	}
	webhookHandler := handler.NewWebhookHandler(verifier, eventsRepo)

	var authn appmw.Authenticator = appmw.DemoAuthenticator{}
	if cfg.FirebaseProjectID != "" {
		fb, err := appmw.NewFirebaseAuthenticator(context.Background(), cfg.FirebaseProjectID)
		if err != nil {
			e.Logger.Fatalf("failed to init firebase auth: %v", err)
		}
		authn = fb
	}
	requireIdentity := appmw.WithIdentity(authn)

	var uploader *photo.Uploader
	if cfg.StorageBucket != "" {
		up, err := photo.NewUploader(context.Background(), cfg.StorageBucket)
		if err != nil {
			e.Logger.Printf("photo uploads disabled: %v", err)
		} else {
			uploader = up
		}
	}
	photoHandler := handler.NewPhotoHandler(uploader)

	var dietaryClient *ai.DietaryClient
	if cfg.GeminiAPIKey != "" {
		dietaryClient = ai.NewDietaryClient(cfg.GeminiModel)
	}
	dietaryHandler := handler.NewDietaryHandler(dietaryClient)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	e.GET("/items", itemHandler.List)
	e.GET("/items/:id", itemHandler.Get)
	e.POST("/items", itemHandler.Create, requireIdentity)
	e.POST("/items/photo", photoHandler.Upload, requireIdentity)
	e.POST("/items/dietary", dietaryHandler.Suggest)
	e.POST("/checkout", checkoutHandler.Checkout, requireIdentity)
	e.POST("/webhooks/paystack", webhookHandler.Paystack)

	return &Server{e: e, itemRepo: itemRepo, eventsRepo: eventsRepo}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) SetDB(db *gorm.DB) {
	s.itemRepo.SetDB(db)
	s.eventsRepo.SetDB(db)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}
