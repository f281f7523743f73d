package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/internal/inventory"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

// Reasons attached to structured errors so callers can tell the failure
// kinds apart without string matching.
const (
	ReasonItemNotFound      = "item_not_found"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonInvalidQuantity   = "invalid_quantity"
)

// Line is one requested reservation: quantity units of the item addressed by
// (category, id).
type Line struct {
	Category enums.ItemCategory `json:"item_category"`
	ItemID   uuid.UUID          `json:"item_id"`
	Quantity int                `json:"quantity"`
}

// Owner identifies the activity the reservation links belong to.
type Owner struct {
	Kind enums.ActivityKind
	ID   uuid.UUID
}

// Validate checks a full batch of lines against current stock without
// mutating anything. All lines are checked so the caller gets every failure
// at once; any failure means the whole batch is rejected.
func Validate(ctx context.Context, tx *gorm.DB, lines []Line) error {
	var combined error
	for _, line := range lines {
		if err := validateLine(ctx, tx, line); err != nil {
			combined = multierr.Append(combined, err)
		}
	}
	if combined == nil {
		return nil
	}
	errs := multierr.Errors(combined)
	if len(errs) == 1 {
		return errs[0]
	}
	details := make([]any, 0, len(errs))
	for _, err := range errs {
		if typed := pkgerrors.As(err); typed != nil {
			details = append(details, map[string]any{"message": typed.Message(), "details": typed.Details()})
		} else {
			details = append(details, map[string]any{"message": err.Error()})
		}
	}
	return pkgerrors.Wrap(pkgerrors.CodeStateConflict, combined, "reservation batch rejected").
		WithDetails(map[string]any{"lines": details})
}

func validateLine(ctx context.Context, tx *gorm.DB, line Line) error {
	if line.Quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation quantity must be positive").
			WithDetails(map[string]any{"reason": ReasonInvalidQuantity, "item_id": line.ItemID})
	}
	if !line.Category.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", line.Category))
	}

	item, err := findItem(ctx, tx, line.Category, line.ItemID)
	if err != nil {
		return err
	}
	if item.OnHand < line.Quantity {
		return errInsufficientStock(item, line.Quantity)
	}
	return nil
}

// Commit validates and applies a batch of lines for the owner: each item's
// on-hand count drops by the line quantity and a reservation link is created.
// It must run inside the caller's transaction; the decrement is guarded so a
// concurrent writer draining stock between validation and update surfaces as
// InsufficientStock instead of a negative count.
func Commit(ctx context.Context, tx *gorm.DB, owner Owner, lines []Line, sink inventory.NotificationSink) error {
	if err := Validate(ctx, tx, lines); err != nil {
		return err
	}

	for _, line := range lines {
		item, err := findItem(ctx, tx, line.Category, line.ItemID)
		if err != nil {
			return err
		}

		res := tx.WithContext(ctx).
			Model(&models.InventoryItem{}).
			Where("id = ? AND on_hand >= ?", item.ID, line.Quantity).
			UpdateColumn("on_hand", gorm.Expr("on_hand - ?", line.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errInsufficientStock(item, line.Quantity)
		}

		after := *item
		after.OnHand -= line.Quantity
		if _, err := inventory.CheckLowStock(ctx, tx, sink, after, item.OnHand); err != nil {
			return err
		}

		itemID := item.ID
		link := models.ReservationLink{
			ActivityKind: owner.Kind,
			ActivityID:   owner.ID,
			ItemCategory: line.Category,
			ItemID:       &itemID,
			Quantity:     line.Quantity,
		}
		if err := tx.WithContext(ctx).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// Restore returns every linked quantity to its item's on-hand count and
// deletes the owner's links. A link whose item record no longer exists is
// skipped silently; there is nothing left to restore and the link is being
// removed regardless.
func Restore(ctx context.Context, tx *gorm.DB, owner Owner) error {
	links, err := ListFor(ctx, tx, owner)
	if err != nil {
		return err
	}

	for _, link := range links {
		if link.ItemID == nil {
			continue
		}
		err := tx.WithContext(ctx).
			Model(&models.InventoryItem{}).
			Where("id = ?", *link.ItemID).
			UpdateColumn("on_hand", gorm.Expr("on_hand + ?", link.Quantity)).Error
		if err != nil {
			return err
		}
	}

	return DeleteAll(ctx, tx, owner)
}

// ListFor returns the owner's current reservation links.
func ListFor(ctx context.Context, tx *gorm.DB, owner Owner) ([]models.ReservationLink, error) {
	var links []models.ReservationLink
	err := tx.WithContext(ctx).
		Where("activity_kind = ? AND activity_id = ?", owner.Kind, owner.ID).
		Order("created_at ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// DeleteAll removes the owner's reservation links without touching stock.
func DeleteAll(ctx context.Context, tx *gorm.DB, owner Owner) error {
	return tx.WithContext(ctx).
		Where("activity_kind = ? AND activity_id = ?", owner.Kind, owner.ID).
		Delete(&models.ReservationLink{}).Error
}

func findItem(ctx context.Context, tx *gorm.DB, category enums.ItemCategory, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := tx.WithContext(ctx).First(&item, "category = ? AND id = ?", category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("inventory item %s not found in %s", id, category)).
				WithDetails(map[string]any{"reason": ReasonItemNotFound, "item_id": id, "item_category": category})
		}
		return nil, err
	}
	return &item, nil
}

func errInsufficientStock(item *models.InventoryItem, requested int) *pkgerrors.Error {
	return pkgerrors.New(
		pkgerrors.CodeStateConflict,
		fmt.Sprintf("insufficient stock for %s: %d available, %d requested", item.Product, item.OnHand, requested),
	).WithDetails(map[string]any{
		"reason":        ReasonInsufficientStock,
		"item_id":       item.ID,
		"item_category": item.Category,
		"available":     item.OnHand,
		"requested":     requested,
	})
}
