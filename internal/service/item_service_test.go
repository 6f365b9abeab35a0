package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodlinkai/foodlink-backend/internal/model"
	"gorm.io/gorm"
)

// stubItemRepo keeps items in memory and assigns sequential IDs.
type stubItemRepo struct {
	items     []model.Item
	lastLimit int
	failWith  error
}

func (s *stubItemRepo) Create(_ context.Context, item *model.Item) error {
	if s.failWith != nil {
		return s.failWith
	}
	item.ID = uint64(len(s.items) + 1)
	item.Status = model.ItemStatusActive
	item.CreatedAt = time.Now()
	s.items = append(s.items, *item)
	return nil
}

func (s *stubItemRepo) FindByID(_ context.Context, id uint64) (*model.Item, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubItemRepo) ListActive(_ context.Context, limit int) ([]model.Item, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.lastLimit = limit
	out := make([]model.Item, 0, limit)
	for i := len(s.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.items[i])
	}
	return out, nil
}

func (s *stubItemRepo) FindByTitle(_ context.Context, title string) (*model.Item, error) {
	for i := range s.items {
		if s.items[i].Title == title {
			return &s.items[i], nil
		}
	}
	return nil, nil
}

func (s *stubItemRepo) SetDB(*gorm.DB) {}

func TestItemServiceCreate(t *testing.T) {
	repo := &stubItemRepo{}
	svc := NewItemService(repo)
	ctx := context.Background()

	five := 5
	first, err := svc.Create(ctx, CreateItemInput{Title: "Bread loaves", Portions: &five})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("id=%d want 1", first.ID)
	}
	if first.Portions != 5 {
		t.Fatalf("portions=%d want 5", first.Portions)
	}

	second, err := svc.Create(ctx, CreateItemInput{Title: "Fruit boxes"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("id=%d want a fresh identifier", second.ID)
	}
	if second.Portions != 1 {
		t.Fatalf("portions=%d want default 1", second.Portions)
	}
}

func TestItemServiceCreateValidation(t *testing.T) {
	svc := NewItemService(&stubItemRepo{})
	tests := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", string(make([]byte, 200))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateItemInput{Title: tt.title})
			if !errors.Is(err, ErrInvalidTitle) {
				t.Fatalf("err=%v want ErrInvalidTitle", err)
			}
		})
	}
}

func TestItemServiceListLimits(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default for negative", -1, 50},
		{"zero passes through", 0, 0},
		{"in range", 10, 10},
		{"clamped", 5000, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubItemRepo{}
			svc := NewItemService(repo)
			if _, err := svc.ListActive(context.Background(), tt.limit); err != nil {
				t.Fatalf("list: %v", err)
			}
			if repo.lastLimit != tt.wantLimit {
				t.Fatalf("limit=%d want %d", repo.lastLimit, tt.wantLimit)
			}
		})
	}
}

func TestItemServiceListOrdering(t *testing.T) {
	repo := &stubItemRepo{}
	svc := NewItemService(repo)
	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(ctx, CreateItemInput{Title: title}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	items, err := svc.ListActive(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len=%d want 2", len(items))
	}
	if items[0].Title != "third" || items[1].Title != "second" {
		t.Fatalf("order=%s,%s want newest first", items[0].Title, items[1].Title)
	}
	if items[0].CreatedAt.Before(items[1].CreatedAt) {
		t.Fatalf("created_at not descending")
	}
}
