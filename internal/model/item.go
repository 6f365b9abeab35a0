package model

import "time"

const ItemStatusActive = "active"

// Dietary is free-form metadata supplied by the poster, e.g.
// {"vegan": true, "contains_nuts": false}.
type Dietary map[string]any

type Item struct {
	ID                uint64     `gorm:"primaryKey;autoIncrement"`
	OrgID             *int64     `gorm:"column:org_id;index"`
	Title             string     `gorm:"size:160;not null"`
	Description       *string    `gorm:"type:text"`
	Category          *string    `gorm:"size:64"`
	PhotoURL          *string    `gorm:"column:photo_url;size:512"`
	Portions          int        `gorm:"not null;default:1"`
	PriceCents        int64      `gorm:"column:price_cents;not null;default:0"`
	ExpiresAt         *time.Time `gorm:"column:expires_at"`
	PickupWindowStart *time.Time `gorm:"column:pickup_window_start"`
	PickupWindowEnd   *time.Time `gorm:"column:pickup_window_end"`
	Status            string     `gorm:"size:32;not null;default:active;index"`
	Dietary           Dietary    `gorm:"serializer:json"`
	CreatedAt         time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (Item) TableName() string {
	return "items"
}
