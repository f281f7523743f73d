package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a showcase catalog entry clients browse when planning an event.
// It carries no stock; rentable quantities live in InventoryItem.
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Colors      pq.StringArray `gorm:"type:text[]" json:"colors"`
	ImageURL    *string        `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
