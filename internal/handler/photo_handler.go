package handler

import (
	"fmt"
	"log"
	"net/http"
	"path"

	"github.com/foodlinkai/foodlink-backend/internal/photo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PhotoHandler struct {
	uploader *photo.Uploader
}

// NewPhotoHandler takes a nil uploader when no storage bucket is configured;
// the endpoint then answers 503.
func NewPhotoHandler(uploader *photo.Uploader) *PhotoHandler {
	return &PhotoHandler{uploader: uploader}
}

type PhotoUploadResponse struct {
	PhotoURL string `json:"photo_url"`
}

func (h *PhotoHandler) Upload(c echo.Context) error {
	if h.uploader == nil {
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse("photo_uploads_disabled", "no storage bucket configured"))
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "multipart field 'photo' is required"))
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unreadable upload"))
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectPath := fmt.Sprintf("items/photos/%s%s", uuid.NewString(), path.Ext(fh.Filename))
	url, err := h.uploader.Upload(c.Request().Context(), objectPath, contentType, src)
	if err != nil {
		log.Printf("photo upload failed: %v", err)
		return c.JSON(http.StatusBadGateway, NewErrorResponse("upload_failed", "failed to store photo"))
	}
	return c.JSON(http.StatusCreated, PhotoUploadResponse{PhotoURL: url})
}
