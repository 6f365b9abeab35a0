package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/foodlinkai/foodlink-backend/internal/middleware"
	"github.com/foodlinkai/foodlink-backend/internal/paystack"
	"github.com/foodlinkai/foodlink-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	svc service.CheckoutService
}

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type CheckoutRequest struct {
	OrderID int64 `json:"order_id"`
}

type DemoCheckoutResponse struct {
	PaymentURL string `json:"payment_url"`
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	ident, _ := middleware.IdentityFrom(c)

	result, err := h.svc.Checkout(c.Request().Context(), req.OrderID, ident)
	if err != nil {
		var apiErr *paystack.APIError
		if errors.As(err, &apiErr) {
			// Provider rejected the transaction; forward its diagnostics.
			return c.JSON(http.StatusBadGateway, NewErrorResponse("bad_gateway", apiErr.Body))
		}
		log.Printf("checkout failed: order=%d err=%v", req.OrderID, err)
		return c.JSON(http.StatusGatewayTimeout, NewErrorResponse("gateway_unreachable", "payment provider unreachable"))
	}
	if result.Demo {
		return c.JSON(http.StatusOK, DemoCheckoutResponse{PaymentURL: result.PaymentURL})
	}
	return c.JSONBlob(http.StatusOK, result.ProviderBody)
}
