package notifications

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/pagination"
)

type fakeRepo struct {
	created  []models.Notification
	read     map[uuid.UUID]bool
	listErr  error
	markHits int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{read: map[uuid.UUID]bool{}}
}

func (f *fakeRepo) WithTx(*gorm.DB) Repository { return f }

func (f *fakeRepo) Create(_ context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	f.created = append(f.created, *notification)
	return nil
}

func (f *fakeRepo) List(context.Context, listParams) ([]models.Notification, *pagination.Cursor, error) {
	if f.listErr != nil {
		return nil, nil, f.listErr
	}
	return f.created, nil, nil
}

func (f *fakeRepo) MarkRead(_ context.Context, id uuid.UUID) (bool, error) {
	f.markHits++
	for _, n := range f.created {
		if n.ID == id {
			f.read[id] = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) MarkAllRead(context.Context) (int64, error) {
	var count int64
	for _, n := range f.created {
		if !f.read[n.ID] {
			f.read[n.ID] = true
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) DeleteAll(context.Context) (int64, error) {
	count := int64(len(f.created))
	f.created = nil
	return count, nil
}

func TestEmitRejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	svc, err := NewService(newFakeRepo())
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	err = svc.Emit(context.Background(), nil, "   ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmitTrimsAndStores(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	if err := svc.Emit(context.Background(), nil, "  Stock bajo: Silla Tiffany  "); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(repo.created))
	}
	if repo.created[0].Message != "Stock bajo: Silla Tiffany" {
		t.Fatalf("message not trimmed: %q", repo.created[0].Message)
	}
	if repo.created[0].IsRead {
		t.Fatal("new notification should be unread")
	}
}

func TestMarkReadUnknownID(t *testing.T) {
	t.Parallel()

	svc, err := NewService(newFakeRepo())
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	err = svc.MarkRead(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected not found error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkAllReadCountsOnlyUnread(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	for _, msg := range []string{"uno", "dos", "tres"} {
		if err := svc.Emit(context.Background(), nil, msg); err != nil {
			t.Fatalf("emit: %v", err)
		}
	}
	if err := svc.MarkRead(context.Background(), repo.created[0].ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	count, err := svc.MarkAllRead(context.Background())
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 updated, got %d", count)
	}
}

func TestListRejectsBadCursor(t *testing.T) {
	t.Parallel()

	svc, err := NewService(newFakeRepo())
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	_, err = svc.List(context.Background(), ListParams{Cursor: "not-a-cursor"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}
