package reservations

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

type recordingSink struct {
	messages []string
}

func (s *recordingSink) Emit(_ context.Context, _ *gorm.DB, message string) error {
	s.messages = append(s.messages, message)
	return nil
}

func TestCommitInsufficientStockRollsBack(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	chairs := seedItem(t, db, enums.ItemCategoryChairs, "Silla Tiffany", 15)
	owner := Owner{Kind: enums.ActivityKindEvent, ID: uuid.New()}

	err := db.Transaction(func(tx *gorm.DB) error {
		return Commit(ctx, tx, owner, []Line{{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 20}}, &recordingSink{})
	})
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := onHand(t, db, chairs); got != 15 {
		t.Fatalf("stock changed on rejected batch: %d", got)
	}
	if got := countLinks(t, db, owner); got != 0 {
		t.Fatalf("links created on rejected batch: %d", got)
	}
}

func TestCommitAndRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	chairs := seedItem(t, db, enums.ItemCategoryChairs, "Silla Tiffany", 15)
	owner := Owner{Kind: enums.ActivityKindEvent, ID: uuid.New()}

	err := db.Transaction(func(tx *gorm.DB) error {
		return Commit(ctx, tx, owner, []Line{{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10}}, &recordingSink{})
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := onHand(t, db, chairs); got != 5 {
		t.Fatalf("expected 5 on hand after commit, got %d", got)
	}
	if got := countLinks(t, db, owner); got != 1 {
		t.Fatalf("expected 1 link, got %d", got)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return Restore(ctx, tx, owner)
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := onHand(t, db, chairs); got != 15 {
		t.Fatalf("expected full stock after restore, got %d", got)
	}
	if got := countLinks(t, db, owner); got != 0 {
		t.Fatalf("expected no links after restore, got %d", got)
	}
}

func TestReplaceBatchAdjustsStock(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	chairs := seedItem(t, db, enums.ItemCategoryChairs, "Silla Tiffany", 15)
	owner := Owner{Kind: enums.ActivityKindEvent, ID: uuid.New()}

	err := db.Transaction(func(tx *gorm.DB) error {
		return Commit(ctx, tx, owner, []Line{{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10}}, &recordingSink{})
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if rerr := Restore(ctx, tx, owner); rerr != nil {
			return rerr
		}
		return Commit(ctx, tx, owner, []Line{{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 4}}, &recordingSink{})
	})
	if err != nil {
		t.Fatalf("replace batch: %v", err)
	}

	if got := onHand(t, db, chairs); got != 11 {
		t.Fatalf("expected 11 on hand after replacing 10 with 4, got %d", got)
	}
	if got := countLinks(t, db, owner); got != 1 {
		t.Fatalf("expected 1 link after replace, got %d", got)
	}
}

func TestCommitLowStockAlertFiresOnCrossing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	plates := seedItem(t, db, enums.ItemCategoryChinaware, "Plato trinche", 15)

	sink := &recordingSink{}
	err := db.Transaction(func(tx *gorm.DB) error {
		owner := Owner{Kind: enums.ActivityKindEvent, ID: uuid.New()}
		return Commit(ctx, tx, owner, []Line{{Category: enums.ItemCategoryChinaware, ItemID: plates, Quantity: 6}}, sink)
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if len(sink.messages) != 1 {
		t.Fatalf("expected one low stock alert, got %d", len(sink.messages))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		owner := Owner{Kind: enums.ActivityKindTasting, ID: uuid.New()}
		return Commit(ctx, tx, owner, []Line{{Category: enums.ItemCategoryChinaware, ItemID: plates, Quantity: 1}}, sink)
	})
	if err != nil {
		t.Fatalf("second commit: %v", err)
	}
	if len(sink.messages) != 1 {
		t.Fatalf("alert repeated below threshold: %d", len(sink.messages))
	}
}

func TestValidateReportsEveryFailure(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	chairs := seedItem(t, db, enums.ItemCategoryChairs, "Silla Tiffany", 2)

	lines := []Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 5},
		{Category: enums.ItemCategoryTables, ItemID: uuid.New(), Quantity: 1},
	}
	err := Validate(ctx, db, lines)
	if err == nil {
		t.Fatal("expected batch rejection")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("unexpected error: %v", err)
	}
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected line details, got %T", typed.Details())
	}
	failed, ok := details["lines"].([]any)
	if !ok || len(failed) != 2 {
		t.Fatalf("expected 2 line failures, got %v", details["lines"])
	}
}

func TestValidateRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	chairs := seedItem(t, db, enums.ItemCategoryChairs, "Silla Tiffany", 15)

	err := Validate(ctx, db, []Line{{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 0}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateUnknownItem(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	err := Validate(ctx, db, []Line{{Category: enums.ItemCategoryChairs, ItemID: uuid.New(), Quantity: 1}})
	if err == nil {
		t.Fatal("expected not found error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func seedItem(t *testing.T, db *gorm.DB, category enums.ItemCategory, product string, onHand int) uuid.UUID {
	t.Helper()
	item := models.InventoryItem{Category: category, Product: product, OnHand: onHand}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item.ID
}

func onHand(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var item models.InventoryItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}
	return item.OnHand
}

func countLinks(t *testing.T, db *gorm.DB, owner Owner) int {
	t.Helper()
	var count int64
	err := db.Model(&models.ReservationLink{}).
		Where("activity_kind = ? AND activity_id = ?", owner.Kind, owner.ID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count links: %v", err)
	}
	return int(count)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:reservations_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.InventoryItem{}, &models.ReservationLink{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
