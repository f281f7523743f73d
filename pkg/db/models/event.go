package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
)

// Event is a scheduled banquet that can commit inventory through
// reservation links.
type Event struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string               `gorm:"type:text;not null" json:"name"`
	EventTypeID *uuid.UUID           `gorm:"type:uuid" json:"event_type_id,omitempty"`
	EventType   *EventType           `gorm:"constraint:OnDelete:SET NULL" json:"event_type,omitempty"`
	GuestCount  int                  `gorm:"not null" json:"guest_count"`
	Coordinator string               `gorm:"type:text;not null" json:"coordinator"`
	Venue       string               `gorm:"type:text;not null" json:"venue"`
	Status      enums.ActivityStatus `gorm:"type:text;not null;default:'Por iniciar'" json:"status"`
	StartDate   time.Time            `gorm:"type:date;not null" json:"start_date"`
	StartTime   string               `gorm:"type:text;not null" json:"start_time"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

// ActivityID implements activities.Settleable.
func (e Event) ActivityID() uuid.UUID { return e.ID }

// ActivityStatus implements activities.Settleable.
func (e Event) ActivityStatus() enums.ActivityStatus { return e.Status }

// ActivityKind implements activities.Settleable.
func (Event) ActivityKind() enums.ActivityKind { return enums.ActivityKindEvent }

// ActivityName implements activities.Settleable.
func (e Event) ActivityName() string { return e.Name }
