package activities

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/internal/reservations"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

type recordingSink struct {
	messages []string
}

func (s *recordingSink) Emit(_ context.Context, _ *gorm.DB, message string) error {
	s.messages = append(s.messages, message)
	return nil
}

func TestCreateEventCommitsReservations(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	sink := &recordingSink{}
	svc := newEventService(t, db, sink)
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	created, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}

	if got := onHand(t, db, chairs); got != 5 {
		t.Fatalf("expected 5 on hand, got %d", got)
	}
	_, links, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(links) != 1 || links[0].Quantity != 10 {
		t.Fatalf("unexpected links: %+v", links)
	}
	if len(sink.messages) != 1 || !strings.Contains(sink.messages[0], "Boda García") {
		t.Fatalf("expected booking notification, got %v", sink.messages)
	}
}

func TestCreateEventRollsBackOnInsufficientStock(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	svc := newEventService(t, db, &recordingSink{})
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	_, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 20},
	})
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}

	if got := onHand(t, db, chairs); got != 15 {
		t.Fatalf("stock changed on rolled back create: %d", got)
	}
	var events int64
	if err := db.Model(&models.Event{}).Count(&events).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if events != 0 {
		t.Fatalf("event persisted despite rollback: %d", events)
	}
}

func TestUpdateReplacesReservationBatch(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	svc := newEventService(t, db, &recordingSink{})
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	created, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, *created, []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 4},
	}, true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got := onHand(t, db, chairs); got != 11 {
		t.Fatalf("expected 11 on hand after replacing 10 with 4, got %d", got)
	}
}

func TestFinishSettlesAndNotifies(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	sink := &recordingSink{}
	svc := newEventService(t, db, sink)
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	created, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	finished := *created
	finished.Status = enums.ActivityStatusFinished
	if _, err := svc.Update(ctx, finished, nil, false); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if got := onHand(t, db, chairs); got != 15 {
		t.Fatalf("expected restored stock, got %d", got)
	}
	_, links, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("links survived settlement: %+v", links)
	}
	var sawFinished bool
	for _, msg := range sink.messages {
		if strings.Contains(msg, "finalizado") {
			sawFinished = true
		}
	}
	if !sawFinished {
		t.Fatalf("expected settlement notification, got %v", sink.messages)
	}
}

func TestRepeatedTerminalSaveDoesNotRestockTwice(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	svc := newEventService(t, db, &recordingSink{})
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	created, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	finished := *created
	finished.Status = enums.ActivityStatusFinished
	if _, err := svc.Update(ctx, finished, nil, false); err != nil {
		t.Fatalf("finish: %v", err)
	}
	finished.Venue = "Salón Jardín"
	if _, err := svc.Update(ctx, finished, nil, false); err != nil {
		t.Fatalf("repeated terminal save: %v", err)
	}

	if got := onHand(t, db, chairs); got != 15 {
		t.Fatalf("stock restocked twice: %d", got)
	}
}

func TestReservationEditRejectedOnceSettled(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	svc := newEventService(t, db, &recordingSink{})
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	created, err := svc.Create(ctx, testEvent("Boda García"), nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	cancelled := *created
	cancelled.Status = enums.ActivityStatusCancelled
	if _, err := svc.Update(ctx, cancelled, nil, false); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err = svc.Update(ctx, cancelled, []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 2},
	}, true)
	if err == nil {
		t.Fatal("expected settled conflict")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancelRestocksWithoutFinishNotification(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	sink := &recordingSink{}
	svc := newEventService(t, db, sink)
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	created, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled := *created
	cancelled.Status = enums.ActivityStatusCancelled
	if _, err := svc.Update(ctx, cancelled, nil, false); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if got := onHand(t, db, chairs); got != 15 {
		t.Fatalf("expected restored stock, got %d", got)
	}
	for _, msg := range sink.messages {
		if strings.Contains(msg, "finalizado") {
			t.Fatalf("finish notification emitted on cancel: %v", sink.messages)
		}
	}
}

func TestDeleteRemovesLinksWithoutRestock(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	svc := newEventService(t, db, &recordingSink{})
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	created, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got := onHand(t, db, chairs); got != 5 {
		t.Fatalf("delete restocked inventory: %d", got)
	}
	var links int64
	err = db.Model(&models.ReservationLink{}).
		Where("activity_id = ?", created.ID).
		Count(&links).Error
	if err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 0 {
		t.Fatalf("links survived delete: %d", links)
	}
}

func TestTastingLifecycleSharesEngine(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	sink := &recordingSink{}

	repo, err := NewRepository[models.Tasting](db)
	if err != nil {
		t.Fatalf("repo: %v", err)
	}
	svc, err := NewService(gormTxRunner{db: db}, repo, sink, nil)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	glasses := seedItem(t, db, enums.ItemCategoryGlassware, 30)
	tasting := models.Tasting{
		Name:        "Degustación Rivera",
		GuestCount:  6,
		Coordinator: "Karla",
		MenuNotes:   "Menú de tres tiempos",
		Status:      enums.ActivityStatusPending,
		TastingDate: time.Now().AddDate(0, 0, 7),
		TastingTime: "13:00",
		EventDate:   time.Now().AddDate(0, 2, 0),
	}

	created, err := svc.Create(ctx, tasting, []reservations.Line{
		{Category: enums.ItemCategoryGlassware, ItemID: glasses, Quantity: 12},
	})
	if err != nil {
		t.Fatalf("create tasting: %v", err)
	}
	if got := onHand(t, db, glasses); got != 18 {
		t.Fatalf("expected 18 on hand, got %d", got)
	}

	finished := *created
	finished.Status = enums.ActivityStatusFinished
	if _, err := svc.Update(ctx, finished, nil, false); err != nil {
		t.Fatalf("finish tasting: %v", err)
	}
	if got := onHand(t, db, glasses); got != 30 {
		t.Fatalf("expected restored stock, got %d", got)
	}
	var sawTasting bool
	for _, msg := range sink.messages {
		if strings.Contains(msg, "degustación") {
			sawTasting = true
		}
	}
	if !sawTasting {
		t.Fatalf("expected tasting notifications, got %v", sink.messages)
	}
}

func TestFinishWithReplacementSkipsSwap(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	sink := &recordingSink{}
	svc := newEventService(t, db, sink)
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 30)

	created, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Finishing and swapping lines in the same save settles the stored
	// batch only; committing 25 first would push on-hand to 5 and fire
	// a low-stock alert for stock that is immediately restored.
	finished := *created
	finished.Status = enums.ActivityStatusFinished
	if _, err := svc.Update(ctx, finished, []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 25},
	}, true); err != nil {
		t.Fatalf("finish with replacement: %v", err)
	}

	if got := onHand(t, db, chairs); got != 30 {
		t.Fatalf("expected restored stock, got %d", got)
	}
	_, links, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("links survived settlement: %+v", links)
	}
	for _, msg := range sink.messages {
		if strings.Contains(msg, "Stock bajo") {
			t.Fatalf("phantom low-stock alert from discarded batch: %v", sink.messages)
		}
	}
}

func TestFailedReplacementKeepsOriginalBatch(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	svc := newEventService(t, db, &recordingSink{})
	chairs := seedItem(t, db, enums.ItemCategoryChairs, 15)

	created, err := svc.Create(ctx, testEvent("Boda García"), []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, *created, []reservations.Line{
		{Category: enums.ItemCategoryChairs, ItemID: chairs, Quantity: 99},
	}, true)
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}

	// The restore that precedes the failed commit must roll back with it.
	if got := onHand(t, db, chairs); got != 5 {
		t.Fatalf("expected 5 on hand after rollback, got %d", got)
	}
	_, links, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(links) != 1 || links[0].Quantity != 10 {
		t.Fatalf("original batch lost on rollback: %+v", links)
	}
}

func newEventService(t *testing.T, db *gorm.DB, sink *recordingSink) *Service[models.Event] {
	t.Helper()
	repo, err := NewRepository[models.Event](db)
	if err != nil {
		t.Fatalf("repo: %v", err)
	}
	svc, err := NewService(gormTxRunner{db: db}, repo, sink, nil)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	return svc
}

func testEvent(name string) models.Event {
	return models.Event{
		Name:        name,
		GuestCount:  120,
		Coordinator: "Lucía",
		Venue:       "Hacienda San Miguel",
		Status:      enums.ActivityStatusPending,
		StartDate:   time.Now().AddDate(0, 1, 0),
		StartTime:   "18:00",
	}
}

func seedItem(t *testing.T, db *gorm.DB, category enums.ItemCategory, onHand int) uuid.UUID {
	t.Helper()
	item := models.InventoryItem{Category: category, Product: "Artículo de prueba", OnHand: onHand}
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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:activities_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.InventoryItem{},
		&models.ReservationLink{},
		&models.Event{},
		&models.Tasting{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
