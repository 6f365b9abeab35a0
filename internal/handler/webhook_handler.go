package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/foodlinkai/foodlink-backend/internal/model"
	"github.com/foodlinkai/foodlink-backend/internal/repository"
	"github.com/labstack/echo/v4"
)

const maxWebhookBody = 1 << 20

// SignatureVerifier checks a provider webhook signature over the raw body.
type SignatureVerifier interface {
	ValidSignature(body []byte, signature string) bool
}

// WebhookHandler accepts Paystack event notifications. With a verifier
// configured, the x-paystack-signature header must match; verified events are
// recorded once per (event, reference). No order state is touched here: what
// a payment event should transition is still an open product question.
type WebhookHandler struct {
	verifier SignatureVerifier
	events   repository.PaymentEventRepository
}

func NewWebhookHandler(verifier SignatureVerifier, events repository.PaymentEventRepository) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, events: events}
}

type AckResponse struct {
	OK bool `json:"ok"`
}

type paystackEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}

func (h *WebhookHandler) Paystack(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unreadable body"))
	}

	if h.verifier != nil {
		sig := c.Request().Header.Get("x-paystack-signature")
		if !h.verifier.ValidSignature(body, sig) {
			return c.JSON(http.StatusUnauthorized, NewErrorResponse("invalid_signature", "signature mismatch"))
		}
	}

	var ev paystackEvent
	if err := json.Unmarshal(body, &ev); err != nil || ev.Event == "" || ev.Data.Reference == "" {
		// Acknowledge anyway; there is nothing durable to key the event on.
		log.Printf("paystack webhook: unparsable payload len=%d", len(body))
		return c.JSON(http.StatusOK, AckResponse{OK: true})
	}

	created, err := h.events.RecordOnce(c.Request().Context(), &model.PaymentEvent{
		Provider:  "paystack",
		EventType: ev.Event,
		Reference: ev.Data.Reference,
		Payload:   string(body),
	})
	if err != nil {
		// Still acknowledge; the provider retries on its own schedule and the
		// signature already vouched for the payload.
		log.Printf("paystack webhook: record failed event=%s reference=%s err=%v", ev.Event, ev.Data.Reference, err)
	} else {
		log.Printf("paystack webhook: event=%s reference=%s recorded=%v", ev.Event, ev.Data.Reference, created)
	}
	return c.JSON(http.StatusOK, AckResponse{OK: true})
}
