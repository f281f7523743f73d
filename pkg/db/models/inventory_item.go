package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
)

// InventoryItem is one rentable-item record inside a category. OnHand counts
// units immediately available to reserve; InMaintenance counts units withdrawn
// for servicing. Neither is ever negative, and OnHand excludes both committed
// and in-maintenance units.
type InventoryItem struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Category      enums.ItemCategory `gorm:"type:text;not null;index:idx_inventory_items_category" json:"category"`
	Product       string             `gorm:"type:text;not null" json:"product"`
	Description   *string            `gorm:"type:text" json:"description,omitempty"`
	OnHand        int                `gorm:"column:on_hand;not null;default:0" json:"on_hand"`
	InMaintenance int                `gorm:"column:in_maintenance;not null;default:0" json:"in_maintenance"`
	WarehouseID   *uuid.UUID         `gorm:"type:uuid" json:"warehouse_id,omitempty"`
	Warehouse     *Warehouse         `gorm:"constraint:OnDelete:SET NULL" json:"warehouse,omitempty"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}
