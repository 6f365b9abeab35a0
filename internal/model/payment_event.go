package model

import "time"

// PaymentEvent is the durable record of a provider webhook delivery. The
// composite unique index makes redeliveries of the same event a no-op.
type PaymentEvent struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Provider  string    `gorm:"size:32;not null;uniqueIndex:idx_provider_event_ref"`
	EventType string    `gorm:"column:event_type;size:64;not null;uniqueIndex:idx_provider_event_ref"`
	Reference string    `gorm:"size:128;not null;uniqueIndex:idx_provider_event_ref"`
	Payload   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (PaymentEvent) TableName() string {
	return "payment_events"
}
