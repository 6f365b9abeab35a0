package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/foodlinkai/foodlink-backend/internal/model"
	"github.com/foodlinkai/foodlink-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidTitle = errors.New("title is required")
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type CreateItemInput struct {
	OrgID             *int64
	Title             string
	Description       *string
	Category          *string
	PhotoURL          *string
	Portions          *int
	PriceCents        int64
	ExpiresAt         *time.Time
	PickupWindowStart *time.Time
	PickupWindowEnd   *time.Time
	Dietary           model.Dietary
}

type ItemService interface {
	Create(ctx context.Context, in CreateItemInput) (*model.Item, error)
	Get(ctx context.Context, id uint64) (*model.Item, error)
	// ListActive returns up to limit active items, newest first. A negative
	// limit means "use the default"; anything above the cap is clamped.
	ListActive(ctx context.Context, limit int) ([]model.Item, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, in CreateItemInput) (*model.Item, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > 160 {
		return nil, ErrInvalidTitle
	}
	portions := 1
	if in.Portions != nil {
		portions = *in.Portions
	}

	// Status and created_at are left to the store defaults.
	item := &model.Item{
		OrgID:             in.OrgID,
		Title:             title,
		Description:       in.Description,
		Category:          in.Category,
		PhotoURL:          in.PhotoURL,
		Portions:          portions,
		PriceCents:        in.PriceCents,
		ExpiresAt:         in.ExpiresAt,
		PickupWindowStart: in.PickupWindowStart,
		PickupWindowEnd:   in.PickupWindowEnd,
		Dietary:           in.Dietary,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id uint64) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListActive(ctx context.Context, limit int) ([]model.Item, error) {
	if limit < 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.ListActive(ctx, limit)
}
