package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/metrics"
)

// ReasonExcessReturn marks a maintenance return that exceeds the quantity
// currently in maintenance.
const ReasonExcessReturn = "excess_return"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns catalog CRUD and the maintenance ledger.
type Service interface {
	List(ctx context.Context, category enums.ItemCategory, search string) ([]models.InventoryItem, error)
	Get(ctx context.Context, category enums.ItemCategory, id uuid.UUID) (*models.InventoryItem, error)
	Create(ctx context.Context, input CreateItemInput) (*models.InventoryItem, error)
	Update(ctx context.Context, category enums.ItemCategory, id uuid.UUID, input UpdateItemInput) (*models.InventoryItem, error)
	Delete(ctx context.Context, category enums.ItemCategory, id uuid.UUID) error
	SendToMaintenance(ctx context.Context, category enums.ItemCategory, id uuid.UUID, qty int) (*models.InventoryItem, error)
	ReturnFromMaintenance(ctx context.Context, category enums.ItemCategory, id uuid.UUID, qty int) (*models.InventoryItem, error)
}

// CreateItemInput carries the fields accepted when creating an item record.
type CreateItemInput struct {
	Category    enums.ItemCategory
	Product     string
	Description *string
	OnHand      int
	WarehouseID *uuid.UUID
}

// UpdateItemInput carries the editable fields; nil means "leave unchanged".
type UpdateItemInput struct {
	Product        *string
	Description    *string
	OnHand         *int
	WarehouseID    *uuid.UUID
	ClearWarehouse bool
}

type service struct {
	tx       txRunner
	repo     Repository
	notifier NotificationSink
	metrics  *metrics.InventoryMetrics
}

// NewService wires inventory dependencies.
func NewService(tx txRunner, repo Repository, notifier NotificationSink, m *metrics.InventoryMetrics) (Service, error) {
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "tx runner required")
	}
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "inventory repository required")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notification sink required")
	}
	return &service{tx: tx, repo: repo, notifier: notifier, metrics: m}, nil
}

func (s *service) List(ctx context.Context, category enums.ItemCategory, search string) ([]models.InventoryItem, error) {
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", category))
	}
	items, err := s.repo.List(ctx, category, search)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inventory items")
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, category enums.ItemCategory, id uuid.UUID) (*models.InventoryItem, error) {
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", category))
	}
	item, err := s.repo.Get(ctx, category, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errItemNotFound(category, id)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inventory item")
	}
	return item, nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*models.InventoryItem, error) {
	if !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", input.Category))
	}
	if input.Product == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	if input.OnHand < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "on-hand quantity cannot be negative")
	}

	item := &models.InventoryItem{
		Category:    input.Category,
		Product:     input.Product,
		Description: input.Description,
		OnHand:      input.OnHand,
		WarehouseID: input.WarehouseID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create inventory item")
	}
	return item, nil
}

// Update edits the record's descriptive fields and, when OnHand is set,
// applies a manual stock correction. The low-stock watcher compares the
// stored value against the edited one, so a manual edit crossing the
// threshold alerts exactly like a reservation would.
func (s *service) Update(ctx context.Context, category enums.ItemCategory, id uuid.UUID, input UpdateItemInput) (*models.InventoryItem, error) {
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", category))
	}
	if input.OnHand != nil && *input.OnHand < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "on-hand quantity cannot be negative")
	}

	var updated *models.InventoryItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.Get(ctx, category, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errItemNotFound(category, id)
			}
			return err
		}

		prevOnHand := item.OnHand
		if input.Product != nil {
			item.Product = *input.Product
		}
		if input.Description != nil {
			item.Description = input.Description
		}
		if input.OnHand != nil {
			item.OnHand = *input.OnHand
		}
		if input.ClearWarehouse {
			item.WarehouseID = nil
			item.Warehouse = nil
		} else if input.WarehouseID != nil {
			item.WarehouseID = input.WarehouseID
			item.Warehouse = nil
		}

		if err := repo.Save(ctx, item); err != nil {
			return err
		}
		fired, err := CheckLowStock(ctx, tx, s.notifier, *item, prevOnHand)
		if err != nil {
			return err
		}
		if fired {
			s.metrics.ObserveLowStock()
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record. Reservation links that still reference it keep
// their quantity but lose the item pointer; settlement then skips them.
func (s *service) Delete(ctx context.Context, category enums.ItemCategory, id uuid.UUID) error {
	if !category.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", category))
	}
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Get(ctx, category, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errItemNotFound(category, id)
			}
			return err
		}
		if err := repo.DetachLinks(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, category, id)
	})
}

// SendToMaintenance moves qty units from on-hand to in-maintenance.
func (s *service) SendToMaintenance(ctx context.Context, category enums.ItemCategory, id uuid.UUID, qty int) (*models.InventoryItem, error) {
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", category))
	}
	if qty <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "maintenance quantity must be positive")
	}

	var updated *models.InventoryItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.Get(ctx, category, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errItemNotFound(category, id)
			}
			return err
		}

		res := tx.WithContext(ctx).
			Model(&models.InventoryItem{}).
			Where("id = ? AND on_hand >= ?", item.ID, qty).
			UpdateColumns(map[string]any{
				"on_hand":        gorm.Expr("on_hand - ?", qty),
				"in_maintenance": gorm.Expr("in_maintenance + ?", qty),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return pkgerrors.New(
				pkgerrors.CodeStateConflict,
				fmt.Sprintf("insufficient stock for %s: %d available, %d requested for maintenance", item.Product, item.OnHand, qty),
			).WithDetails(map[string]any{"reason": "insufficient_stock", "available": item.OnHand, "requested": qty})
		}

		prevOnHand := item.OnHand
		item.OnHand -= qty
		item.InMaintenance += qty

		msg := fmt.Sprintf("%d unidades de %s (%s) enviadas a mantenimiento.", qty, item.Product, item.Category.DisplayName())
		if err := s.notifier.Emit(ctx, tx, msg); err != nil {
			return err
		}
		fired, err := CheckLowStock(ctx, tx, s.notifier, *item, prevOnHand)
		if err != nil {
			return err
		}
		if fired {
			s.metrics.ObserveLowStock()
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveMaintenance("send")
	return updated, nil
}

// ReturnFromMaintenance moves qty units back from in-maintenance to on-hand.
func (s *service) ReturnFromMaintenance(ctx context.Context, category enums.ItemCategory, id uuid.UUID, qty int) (*models.InventoryItem, error) {
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", category))
	}
	if qty <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "maintenance quantity must be positive")
	}

	var updated *models.InventoryItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.Get(ctx, category, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errItemNotFound(category, id)
			}
			return err
		}

		res := tx.WithContext(ctx).
			Model(&models.InventoryItem{}).
			Where("id = ? AND in_maintenance >= ?", item.ID, qty).
			UpdateColumns(map[string]any{
				"on_hand":        gorm.Expr("on_hand + ?", qty),
				"in_maintenance": gorm.Expr("in_maintenance - ?", qty),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return pkgerrors.New(
				pkgerrors.CodeStateConflict,
				fmt.Sprintf("cannot return %d units of %s: only %d in maintenance", qty, item.Product, item.InMaintenance),
			).WithDetails(map[string]any{"reason": ReasonExcessReturn, "in_maintenance": item.InMaintenance, "requested": qty})
		}

		item.OnHand += qty
		item.InMaintenance -= qty

		msg := fmt.Sprintf("%d unidades de %s (%s) reintegradas al stock.", qty, item.Product, item.Category.DisplayName())
		if err := s.notifier.Emit(ctx, tx, msg); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveMaintenance("return")
	return updated, nil
}

func errItemNotFound(category enums.ItemCategory, id uuid.UUID) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("inventory item %s not found in %s", id, category)).
		WithDetails(map[string]any{"reason": "item_not_found", "item_id": id, "item_category": category})
}
