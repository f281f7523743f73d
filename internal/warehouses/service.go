package warehouses

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns the warehouse catalog.
type Service interface {
	List(ctx context.Context) ([]models.Warehouse, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	Create(ctx context.Context, input CreateWarehouseInput) (*models.Warehouse, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateWarehouseInput) (*models.Warehouse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateWarehouseInput carries the fields accepted when creating a warehouse.
type CreateWarehouseInput struct {
	Name        string
	Location    string
	Description *string
}

// UpdateWarehouseInput carries the editable fields; nil means "leave unchanged".
type UpdateWarehouseInput struct {
	Name        *string
	Location    *string
	Description *string
}

type service struct {
	tx   txRunner
	repo Repository
}

// NewService wires warehouse dependencies.
func NewService(tx txRunner, repo Repository) (Service, error) {
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "tx runner required")
	}
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "warehouse repository required")
	}
	return &service{tx: tx, repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Warehouse, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreateWarehouseInput) (*models.Warehouse, error) {
	warehouse := models.Warehouse{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, &warehouse); err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateWarehouseInput) (*models.Warehouse, error) {
	warehouse, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		warehouse.Name = *input.Name
	}
	if input.Location != nil {
		warehouse.Location = *input.Location
	}
	if input.Description != nil {
		warehouse.Description = input.Description
	}
	if err := s.repo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Delete removes the warehouse and clears its reference from items in the
// same transaction, so a failed detach never leaves dangling rows.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.DetachItems(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}
