// seed inserts a handful of sample surplus-food listings for local
// development. Safe to rerun: items already present (by title) are skipped.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/foodlinkai/foodlink-backend/internal/config"
	"github.com/foodlinkai/foodlink-backend/internal/db"
	"github.com/foodlinkai/foodlink-backend/internal/model"
	"github.com/foodlinkai/foodlink-backend/internal/repository"
	"github.com/joho/godotenv"
)

type sample struct {
	title       string
	description string
	category    string
	portions    int
	priceCents  int64
	expiresIn   time.Duration
}

var samples = []sample{
	{"Bread loaves", "Day-old sourdough and rye loaves from the morning bake.", "bakery", 5, 0, 24 * time.Hour},
	{"Vegetable crates", "Mixed seasonal vegetables, slightly blemished but fresh.", "produce", 12, 1500, 48 * time.Hour},
	{"Rice and beans trays", "Catering surplus, refrigerated since service.", "prepared", 8, 2500, 12 * time.Hour},
	{"Fruit boxes", "Bananas, oranges and pineapples near best-before.", "produce", 6, 1000, 36 * time.Hour},
	{"Yogurt packs", "Unopened single-serve packs, two days to expiry.", "dairy", 20, 500, 48 * time.Hour},
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.Item{}, &model.PaymentEvent{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	itemRepo := repository.NewItemRepository(gdb)
	inserted, skipped := 0, 0

	for _, s := range samples {
		existing, err := itemRepo.FindByTitle(ctx, s.title)
		if err != nil {
			return fmt.Errorf("check existing %q: %w", s.title, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		desc := s.description
		cat := s.category
		expires := time.Now().Add(s.expiresIn)
		pickupStart := time.Now().Add(time.Hour)
		pickupEnd := pickupStart.Add(4 * time.Hour)

		item := &model.Item{
			Title:             s.title,
			Description:       &desc,
			Category:          &cat,
			Portions:          s.portions,
			PriceCents:        s.priceCents,
			ExpiresAt:         &expires,
			PickupWindowStart: &pickupStart,
			PickupWindowEnd:   &pickupEnd,
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("insert %q: %w", s.title, err)
		}
		inserted++
	}

	log.Printf("seed complete: inserted=%d skipped=%d total=%d", inserted, skipped, len(samples))
	return nil
}
