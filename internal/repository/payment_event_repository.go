package repository

import (
	"context"

	"github.com/foodlinkai/foodlink-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentEventRepository interface {
	// RecordOnce inserts the event unless one with the same
	// provider/event_type/reference already exists. Returns whether a row
	// was written.
	RecordOnce(ctx context.Context, ev *model.PaymentEvent) (bool, error)
	SetDB(db *gorm.DB)
}

type paymentEventRepository struct {
	db *gorm.DB
}

func NewPaymentEventRepository(db *gorm.DB) PaymentEventRepository {
	return &paymentEventRepository{db: db}
}

func (r *paymentEventRepository) RecordOnce(ctx context.Context, ev *model.PaymentEvent) (bool, error) {
	if r.db == nil {
		return false, ErrDBNotReady
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(ev)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *paymentEventRepository) SetDB(db *gorm.DB) {
	r.db = db
}
