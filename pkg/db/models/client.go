package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a prospect captured by the sales team before an event is booked.
type Client struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string     `gorm:"type:text;not null" json:"first_name"`
	LastName    string     `gorm:"type:text;not null" json:"last_name"`
	EventTypeID *uuid.UUID `gorm:"type:uuid" json:"event_type_id,omitempty"`
	EventType   *EventType `gorm:"constraint:OnDelete:SET NULL" json:"event_type,omitempty"`
	ApproxCount int        `gorm:"not null" json:"approx_count"`
	Phone       string     `gorm:"type:text;not null" json:"phone"`
	Comments    *string    `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
