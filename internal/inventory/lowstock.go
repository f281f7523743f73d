package inventory

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
)

// LowStockThreshold is the fixed policy constant below which a stock alert
// fires. The alert triggers only on the save that crosses the threshold, so
// an item already below 10 does not re-alert on every further decrement.
const LowStockThreshold = 10

// NotificationSink records a notification row inside the caller's transaction.
type NotificationSink interface {
	Emit(ctx context.Context, tx *gorm.DB, message string) error
}

// CheckLowStock emits at most one low-stock alert for a saved item, comparing
// the stored on-hand value before the save against the value after it.
func CheckLowStock(ctx context.Context, tx *gorm.DB, sink NotificationSink, item models.InventoryItem, prevOnHand int) (bool, error) {
	if sink == nil {
		return false, nil
	}
	if prevOnHand < LowStockThreshold || item.OnHand >= LowStockThreshold {
		return false, nil
	}
	msg := fmt.Sprintf(
		"Stock bajo: %s (%s) tiene %d unidades disponibles.",
		item.Product, item.Category.DisplayName(), item.OnHand,
	)
	if err := sink.Emit(ctx, tx, msg); err != nil {
		return false, err
	}
	return true, nil
}
