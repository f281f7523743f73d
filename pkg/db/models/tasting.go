package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
)

// Tasting is a menu-tasting appointment held ahead of an event. It follows
// the same lifecycle and reservation rules as Event.
type Tasting struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string               `gorm:"type:text;not null" json:"name"`
	GuestCount  int                  `gorm:"not null" json:"guest_count"`
	Coordinator string               `gorm:"type:text;not null" json:"coordinator"`
	MenuNotes   string               `gorm:"type:text;not null" json:"menu_notes"`
	Status      enums.ActivityStatus `gorm:"type:text;not null;default:'Por iniciar'" json:"status"`
	TastingDate time.Time            `gorm:"type:date;not null" json:"tasting_date"`
	TastingTime string               `gorm:"type:text;not null" json:"tasting_time"`
	EventDate   time.Time            `gorm:"type:date;not null" json:"event_date"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

// ActivityID implements activities.Settleable.
func (t Tasting) ActivityID() uuid.UUID { return t.ID }

// ActivityStatus implements activities.Settleable.
func (t Tasting) ActivityStatus() enums.ActivityStatus { return t.Status }

// ActivityKind implements activities.Settleable.
func (Tasting) ActivityKind() enums.ActivityKind { return enums.ActivityKindTasting }

// ActivityName implements activities.Settleable.
func (t Tasting) ActivityName() string { return t.Name }
