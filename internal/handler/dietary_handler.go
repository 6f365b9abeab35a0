package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/foodlinkai/foodlink-backend/internal/ai"
	"github.com/labstack/echo/v4"
)

type DietaryHandler struct {
	client *ai.DietaryClient
}

// NewDietaryHandler takes a nil client when no Gemini API key is configured.
func NewDietaryHandler(client *ai.DietaryClient) *DietaryHandler {
	return &DietaryHandler{client: client}
}

type DietarySuggestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DietarySuggestResponse struct {
	Tags []string `json:"tags"`
}

func (h *DietaryHandler) Suggest(c echo.Context) error {
	if h.client == nil {
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("dietary_suggestions_disabled", "no Gemini API key configured"))
	}
	var req DietarySuggestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "title is required"))
	}
	tags, err := h.client.Suggest(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, ai.ErrParseFailed) {
			return c.JSON(http.StatusOK, DietarySuggestResponse{Tags: []string{}})
		}
		log.Printf("dietary suggest failed: %v", err)
		return c.JSON(http.StatusBadGateway, NewErrorResponse("suggestion_failed", "dietary suggestion unavailable"))
	}
	return c.JSON(http.StatusOK, DietarySuggestResponse{Tags: tags})
}
