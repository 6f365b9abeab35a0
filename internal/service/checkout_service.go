package service

import (
	"context"

	"github.com/foodlinkai/foodlink-backend/internal/middleware"
	"github.com/foodlinkai/foodlink-backend/internal/paystack"
	"github.com/google/uuid"
)

// DemoPaymentURL is returned when no Paystack credential is configured.
const DemoPaymentURL = "https://paystack.com/pay/demo-foodlink-checkout"

// PaymentGateway is the slice of the Paystack client the checkout flow needs.
type PaymentGateway interface {
	Live() bool
	InitializeTransaction(ctx context.Context, in paystack.InitializeRequest) ([]byte, error)
}

// OrderPricer resolves the amount to charge for an order, in minor currency
// units. The order store lives outside this system, so the default
// implementation charges a fixed demo amount.
type OrderPricer interface {
	AmountMinor(ctx context.Context, orderID int64) (int64, error)
}

type FixedPricer struct {
	Amount int64
}

func (p FixedPricer) AmountMinor(context.Context, int64) (int64, error) {
	return p.Amount, nil
}

// DefaultPricer mirrors the 5000-kobo demo charge.
var DefaultPricer = FixedPricer{Amount: 5000}

type CheckoutResult struct {
	// Demo is set when no provider credential is configured; PaymentURL then
	// holds the placeholder URL and ProviderBody is nil.
	Demo       bool
	PaymentURL string
	// ProviderBody is Paystack's raw JSON response, forwarded verbatim.
	ProviderBody []byte
}

type CheckoutService interface {
	Checkout(ctx context.Context, orderID int64, ident middleware.Identity) (*CheckoutResult, error)
}

type checkoutService struct {
	gateway PaymentGateway
	pricer  OrderPricer
}

func NewCheckoutService(gateway PaymentGateway, pricer OrderPricer) CheckoutService {
	if pricer == nil {
		pricer = DefaultPricer
	}
	return &checkoutService{gateway: gateway, pricer: pricer}
}

func (s *checkoutService) Checkout(ctx context.Context, orderID int64, ident middleware.Identity) (*CheckoutResult, error) {
	if s.gateway == nil || !s.gateway.Live() {
		return &CheckoutResult{Demo: true, PaymentURL: DemoPaymentURL}, nil
	}

	amount, err := s.pricer.AmountMinor(ctx, orderID)
	if err != nil {
		return nil, err
	}
	email := ident.Email
	if email == "" {
		email = "buyer@example.com"
	}

	body, err := s.gateway.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:     email,
		Amount:    amount,
		Currency:  "NGN",
		Reference: uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{ProviderBody: body}, nil
}
