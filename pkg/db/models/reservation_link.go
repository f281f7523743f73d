package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
)

// ReservationLink records N units of one inventory item committed to one
// activity (event or tasting). Links are created only inside a reservation
// commit and deleted only at settlement or activity deletion; a quantity
// change is modeled as delete plus recreate. ItemID goes null when the
// referenced item record is removed while the link is still alive.
type ReservationLink struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityKind enums.ActivityKind `gorm:"type:text;not null;index:idx_reservation_links_owner" json:"activity_kind"`
	ActivityID   uuid.UUID          `gorm:"type:uuid;not null;index:idx_reservation_links_owner" json:"activity_id"`
	ItemCategory enums.ItemCategory `gorm:"type:text;not null" json:"item_category"`
	ItemID       *uuid.UUID         `gorm:"type:uuid" json:"item_id,omitempty"`
	Quantity     int                `gorm:"not null" json:"quantity"`
	CreatedAt    time.Time          `gorm:"autoCreateTime" json:"created_at"`
}
