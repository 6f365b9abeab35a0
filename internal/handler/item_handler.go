package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/foodlinkai/foodlink-backend/internal/model"
	"github.com/foodlinkai/foodlink-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type CreateItemRequest struct {
	OrgID             *int64        `json:"org_id"`
	Title             string        `json:"title"`
	Description       *string       `json:"description"`
	Category          *string       `json:"category"`
	PhotoURL          *string       `json:"photo_url"`
	Portions          *int          `json:"portions"`
	PriceCents        int64         `json:"price_cents"`
	ExpiresAt         *time.Time    `json:"expires_at"`
	PickupWindowStart *time.Time    `json:"pickup_window_start"`
	PickupWindowEnd   *time.Time    `json:"pickup_window_end"`
	Dietary           model.Dietary `json:"dietary"`
}

type CreateItemResponse struct {
	ID uint64 `json:"id"`
}

type ItemResponse struct {
	ID                uint64        `json:"id"`
	OrgID             *int64        `json:"org_id"`
	Title             string        `json:"title"`
	Description       *string       `json:"description"`
	Category          *string       `json:"category"`
	PhotoURL          *string       `json:"photo_url"`
	Portions          int           `json:"portions"`
	PriceCents        int64         `json:"price_cents"`
	ExpiresAt         *string       `json:"expires_at"`
	PickupWindowStart *string       `json:"pickup_window_start"`
	PickupWindowEnd   *string       `json:"pickup_window_end"`
	Status            string        `json:"status"`
	Dietary           model.Dietary `json:"dietary,omitempty"`
	CreatedAt         string        `json:"created_at"`
}

func (h *ItemHandler) Create(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	item, err := h.svc.Create(c.Request().Context(), service.CreateItemInput{
		OrgID:             req.OrgID,
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		PhotoURL:          req.PhotoURL,
		Portions:          req.Portions,
		PriceCents:        req.PriceCents,
		ExpiresAt:         req.ExpiresAt,
		PickupWindowStart: req.PickupWindowStart,
		PickupWindowEnd:   req.PickupWindowEnd,
		Dietary:           req.Dietary,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTitle) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
		log.Printf("create item failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("store_unavailable", "failed to save item"))
	}
	return c.JSON(http.StatusCreated, CreateItemResponse{ID: item.ID})
}

func (h *ItemHandler) List(c echo.Context) error {
	limit := -1
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid limit"))
		}
		limit = parsed
	}
	items, err := h.svc.ListActive(c.Request().Context(), limit)
	if err != nil {
		log.Printf("list items failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("store_unavailable", "failed to fetch items"))
	}
	resp := make([]ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		}
		log.Printf("get item failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("store_unavailable", "failed to fetch item"))
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

func toItemResponse(item *model.Item) ItemResponse {
	return ItemResponse{
		ID:                item.ID,
		OrgID:             item.OrgID,
		Title:             item.Title,
		Description:       item.Description,
		Category:          item.Category,
		PhotoURL:          item.PhotoURL,
		Portions:          item.Portions,
		PriceCents:        item.PriceCents,
		ExpiresAt:         formatTimePtr(item.ExpiresAt),
		PickupWindowStart: formatTimePtr(item.PickupWindowStart),
		PickupWindowEnd:   formatTimePtr(item.PickupWindowEnd),
		Status:            item.Status,
		Dietary:           item.Dietary,
		CreatedAt:         item.CreatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	val := t.Format(time.RFC3339)
	return &val
}
