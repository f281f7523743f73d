package eventtypes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

// Repository exposes persistence helpers for event types.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Get(ctx context.Context, id uuid.UUID) (*models.EventType, error)
	List(ctx context.Context) ([]models.EventType, error)
	Create(ctx context.Context, eventType *models.EventType) error
	Save(ctx context.Context, eventType *models.EventType) error
	Delete(ctx context.Context, id uuid.UUID) error
	DetachReferences(ctx context.Context, id uuid.UUID) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an event type repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Get(ctx context.Context, id uuid.UUID) (*models.EventType, error) {
	var eventType models.EventType
	err := r.db.WithContext(ctx).First(&eventType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("event type %s not found", id))
		}
		return nil, err
	}
	return &eventType, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.EventType, error) {
	var eventTypes []models.EventType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&eventTypes).Error
	if err != nil {
		return nil, err
	}
	return eventTypes, nil
}

func (r *repositoryImpl) Create(ctx context.Context, eventType *models.EventType) error {
	return r.db.WithContext(ctx).Create(eventType).Error
}

func (r *repositoryImpl) Save(ctx context.Context, eventType *models.EventType) error {
	return r.db.WithContext(ctx).Save(eventType).Error
}

func (r *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.EventType{}, "id = ?", id).Error
}

// DetachReferences clears the type from events and clients that point at it.
func (r *repositoryImpl) DetachReferences(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("event_type_id = ?", id).
		UpdateColumn("event_type_id", nil).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("event_type_id = ?", id).
		UpdateColumn("event_type_id", nil).Error
}
