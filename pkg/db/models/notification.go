package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification stores a human-readable lifecycle or stock alert. The core
// only appends; read/delete belongs to the API layer.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
