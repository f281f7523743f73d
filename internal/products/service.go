package products

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

// Service owns the showcase product catalog.
type Service interface {
	List(ctx context.Context, search string) ([]models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateProductInput carries the fields accepted when creating a product.
type CreateProductInput struct {
	Name        string
	Description *string
	Colors      []string
	ImageURL    *string
}

// UpdateProductInput carries the editable fields; nil means "leave unchanged".
type UpdateProductInput struct {
	Name        *string
	Description *string
	Colors      []string
	ImageURL    *string
}

type service struct {
	repo Repository
}

// NewService wires product dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, search string) ([]models.Product, error) {
	return s.repo.List(ctx, search)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Colors:      pq.StringArray(input.Colors),
		ImageURL:    input.ImageURL,
	}
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Colors != nil {
		product.Colors = pq.StringArray(input.Colors)
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
