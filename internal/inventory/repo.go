package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
)

// Repository exposes persistence helpers for inventory item records.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Get(ctx context.Context, category enums.ItemCategory, id uuid.UUID) (*models.InventoryItem, error)
	List(ctx context.Context, category enums.ItemCategory, search string) ([]models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
	Save(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, category enums.ItemCategory, id uuid.UUID) error
	DetachLinks(ctx context.Context, id uuid.UUID) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Get(ctx context.Context, category enums.ItemCategory, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Warehouse").
		First(&item, "category = ? AND id = ?", category, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repositoryImpl) List(ctx context.Context, category enums.ItemCategory, search string) ([]models.InventoryItem, error) {
	query := r.db.WithContext(ctx).
		Preload("Warehouse").
		Where("category = ?", category).
		Order("created_at DESC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("product LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repositoryImpl) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repositoryImpl) Save(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repositoryImpl) Delete(ctx context.Context, category enums.ItemCategory, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("category = ? AND id = ?", category, id).
		Delete(&models.InventoryItem{}).Error
}

// DetachLinks nulls the item reference on any reservation link still pointing
// at the record, mirroring the ON DELETE SET NULL constraint for stores that
// lack it. Callers reconcile the dangling links at settlement time.
func (r *repositoryImpl) DetachLinks(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.ReservationLink{}).
		Where("item_id = ?", id).
		UpdateColumn("item_id", nil).Error
}
