package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

// Service owns the prospect client book.
type Service interface {
	List(ctx context.Context, search string) ([]models.Client, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Create(ctx context.Context, input CreateClientInput) (*models.Client, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*models.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateClientInput carries the fields accepted when registering a prospect.
type CreateClientInput struct {
	FirstName   string
	LastName    string
	EventTypeID *uuid.UUID
	ApproxCount int
	Phone       string
	Comments    *string
}

// UpdateClientInput carries the editable fields; nil means "leave unchanged".
type UpdateClientInput struct {
	FirstName      *string
	LastName       *string
	EventTypeID    *uuid.UUID
	ClearEventType bool
	ApproxCount    *int
	Phone          *string
	Comments       *string
}

type service struct {
	repo Repository
}

// NewService wires client dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "client repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, search string) ([]models.Client, error) {
	return s.repo.List(ctx, search)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreateClientInput) (*models.Client, error) {
	if input.ApproxCount < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "approximate guest count cannot be negative")
	}
	client := models.Client{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		EventTypeID: input.EventTypeID,
		ApproxCount: input.ApproxCount,
		Phone:       input.Phone,
		Comments:    input.Comments,
	}
	if err := s.repo.Create(ctx, &client); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, client.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*models.Client, error) {
	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		client.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		client.LastName = *input.LastName
	}
	if input.ClearEventType {
		client.EventTypeID = nil
		client.EventType = nil
	} else if input.EventTypeID != nil {
		client.EventTypeID = input.EventTypeID
		client.EventType = nil
	}
	if input.ApproxCount != nil {
		if *input.ApproxCount < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "approximate guest count cannot be negative")
		}
		client.ApproxCount = *input.ApproxCount
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Comments != nil {
		client.Comments = input.Comments
	}
	if err := s.repo.Save(ctx, client); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
