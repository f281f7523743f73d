package eventtypes

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

// Service owns the event type catalog.
type Service interface {
	List(ctx context.Context) ([]models.EventType, error)
	Get(ctx context.Context, id uuid.UUID) (*models.EventType, error)
	Create(ctx context.Context, input CreateEventTypeInput) (*models.EventType, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEventTypeInput) (*models.EventType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateEventTypeInput carries the fields accepted when creating a type.
type CreateEventTypeInput struct {
	Name        string
	Description *string
}

// UpdateEventTypeInput carries the editable fields; nil means "leave unchanged".
type UpdateEventTypeInput struct {
	Name        *string
	Description *string
}

type service struct {
	tx   txRunner
	repo Repository
}

// NewService wires event type dependencies.
func NewService(tx txRunner, repo Repository) (Service, error) {
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "tx runner required")
	}
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "event type repository required")
	}
	return &service{tx: tx, repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.EventType, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.EventType, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreateEventTypeInput) (*models.EventType, error) {
	eventType := models.EventType{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, &eventType); err != nil {
		return nil, err
	}
	return &eventType, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateEventTypeInput) (*models.EventType, error) {
	eventType, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		eventType.Name = *input.Name
	}
	if input.Description != nil {
		eventType.Description = input.Description
	}
	if err := s.repo.Save(ctx, eventType); err != nil {
		return nil, err
	}
	return eventType, nil
}

// Delete removes the type and clears it from events and clients in one
// transaction.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.DetachReferences(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}
