package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/internal/reservations"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

// ReasonActivityNotFound marks lookups for an activity id that does not
// exist.
const ReasonActivityNotFound = "activity_not_found"

// Repository persists one concrete activity shape.
type Repository[T Record] struct {
	db *gorm.DB
}

// NewRepository builds a Repository bound to the given handle.
func NewRepository[T Record](db *gorm.DB) (*Repository[T], error) {
	if db == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "db handle required")
	}
	return &Repository[T]{db: db}, nil
}

// WithTx returns a copy of the repository scoped to the given transaction.
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	return &Repository[T]{db: tx}
}

func (r *Repository[T]) kind() enums.ActivityKind {
	var zero T
	return zero.ActivityKind()
}

func (r *Repository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(
				pkgerrors.CodeNotFound,
				fmt.Sprintf("%s %s not found", r.kind(), id),
			).WithDetails(map[string]any{"reason": ReasonActivityNotFound, "activity_id": id, "activity_kind": r.kind()})
		}
		return nil, err
	}
	return &rec, nil
}

// List returns records newest-first, optionally filtered by status.
func (r *Repository[T]) List(ctx context.Context, status *enums.ActivityStatus) ([]T, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var recs []T
	if err := query.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *Repository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *Repository[T]) Save(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var rec T
	return r.db.WithContext(ctx).Delete(&rec, "id = ?", id).Error
}

// Links returns the reservation links currently held by the given activity.
func (r *Repository[T]) Links(ctx context.Context, id uuid.UUID) ([]models.ReservationLink, error) {
	return reservations.ListFor(ctx, r.db, reservations.Owner{Kind: r.kind(), ID: id})
}
