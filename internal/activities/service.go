package activities

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/internal/inventory"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/reservations"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/metrics"
)

// ReasonActivitySettled marks reservation edits attempted against an
// activity whose lifecycle already closed.
const ReasonActivitySettled = "activity_settled"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service drives the shared lifecycle for one activity shape: creation with
// an initial reservation batch, edits that replace the batch, the terminal
// transition that settles committed stock back into inventory, and deletion.
type Service[T Record] struct {
	tx       txRunner
	repo     *Repository[T]
	notifier inventory.NotificationSink
	metrics  *metrics.InventoryMetrics
}

// NewService wires lifecycle dependencies for one activity shape.
func NewService[T Record](tx txRunner, repo *Repository[T], notifier inventory.NotificationSink, m *metrics.InventoryMetrics) (*Service[T], error) {
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "tx runner required")
	}
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity repository required")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notification sink required")
	}
	return &Service[T]{tx: tx, repo: repo, notifier: notifier, metrics: m}, nil
}

// List returns activities newest-first, optionally filtered by status.
func (s *Service[T]) List(ctx context.Context, status *enums.ActivityStatus) ([]T, error) {
	if status != nil && !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown activity status %q", *status))
	}
	return s.repo.List(ctx, status)
}

// Get returns one activity together with its current reservation links.
func (s *Service[T]) Get(ctx context.Context, id uuid.UUID) (*T, []models.ReservationLink, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	links, err := s.repo.Links(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rec, links, nil
}

// Create persists the record and commits its initial reservation batch in
// one transaction. Every line must clear stock validation or the whole
// creation rolls back. Creating in a terminal status is accepted but no
// settlement runs; settlement only ever fires on a stored transition.
func (s *Service[T]) Create(ctx context.Context, rec T, lines []reservations.Line) (*T, error) {
	status := rec.ActivityStatus()
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown activity status %q", status))
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, &rec); err != nil {
			return err
		}

		owner := reservations.Owner{Kind: rec.ActivityKind(), ID: rec.ActivityID()}
		if len(lines) > 0 {
			if err := reservations.Commit(ctx, tx, owner, lines, s.notifier); err != nil {
				return err
			}
			s.metrics.ObserveReservation(string(owner.Kind))
		}

		if status == enums.ActivityStatusPending {
			return s.notifier.Emit(ctx, tx, newBookingMessage(owner.Kind, rec.ActivityName()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update saves the record and, when replaceLines is set, swaps its
// reservation batch for the given one. A transition from a live status into
// a terminal one settles the activity: every committed quantity returns to
// stock and the links are removed. When one save does both, the swap is
// skipped and only the stored links settle. An activity already stored terminal stays
// settled, so a repeated terminal save never restocks twice and its
// reservations can no longer change.
func (s *Service[T]) Update(ctx context.Context, rec T, lines []reservations.Line, replaceLines bool) (*T, error) {
	next := rec.ActivityStatus()
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown activity status %q", next))
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		stored, err := repo.Get(ctx, rec.ActivityID())
		if err != nil {
			return err
		}

		owner := reservations.Owner{Kind: rec.ActivityKind(), ID: rec.ActivityID()}
		storedStatus := (*stored).ActivityStatus()

		if replaceLines {
			if storedStatus.IsTerminal() && next.IsTerminal() {
				return pkgerrors.New(
					pkgerrors.CodeStateConflict,
					fmt.Sprintf("%s %s is already settled; reservations can no longer change", owner.Kind, owner.ID),
				).WithDetails(map[string]any{"reason": ReasonActivitySettled, "activity_id": owner.ID})
			}
			// A save that settles below would immediately restore whatever
			// this batch commits, so skip the swap: committing first would
			// leave phantom low-stock alerts and reservation counts behind.
			if !next.IsTerminal() {
				if err := reservations.Restore(ctx, tx, owner); err != nil {
					return err
				}
				if len(lines) > 0 {
					if err := reservations.Commit(ctx, tx, owner, lines, s.notifier); err != nil {
						return err
					}
					s.metrics.ObserveReservation(string(owner.Kind))
				}
			}
		}

		if !storedStatus.IsTerminal() && next.IsTerminal() {
			if err := reservations.Restore(ctx, tx, owner); err != nil {
				return err
			}
			s.metrics.ObserveSettlement(string(owner.Kind), string(next))
			if next == enums.ActivityStatusFinished {
				if err := s.notifier.Emit(ctx, tx, settledMessage(owner.Kind, rec.ActivityName())); err != nil {
					return err
				}
			}
		}

		return repo.Save(ctx, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record and its reservation links. Stock is not
// restored: deleting a live activity forfeits its committed quantities, the
// same as the links cascading away with their owner.
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Get(ctx, id); err != nil {
			return err
		}
		var zero T
		owner := reservations.Owner{Kind: zero.ActivityKind(), ID: id}
		if err := reservations.DeleteAll(ctx, tx, owner); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

func newBookingMessage(kind enums.ActivityKind, name string) string {
	if kind == enums.ActivityKindTasting {
		return fmt.Sprintf("Nueva degustación creada: %s.", name)
	}
	return fmt.Sprintf("Nuevo evento creado: %s.", name)
}

func settledMessage(kind enums.ActivityKind, name string) string {
	if kind == enums.ActivityKindTasting {
		return fmt.Sprintf("La degustación %q ha finalizado y su mobiliario regresó al inventario.", name)
	}
	return fmt.Sprintf("El evento %q ha finalizado y su mobiliario regresó al inventario.", name)
}
