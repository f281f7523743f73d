package warehouses

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func setupWarehousesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:warehouses_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Warehouse{}, &models.InventoryItem{}))
	return db
}

func newWarehousesService(t *testing.T, db *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(gormTxRunner{db: db}, NewRepository(db))
	require.NoError(t, err)
	return svc
}

func TestWarehouseCRUD(t *testing.T) {
	t.Parallel()

	db := setupWarehousesTestDB(t)
	svc := newWarehousesService(t, db)
	ctx := context.Background()

	desc := "Bodega principal de mobiliario"
	created, err := svc.Create(ctx, CreateWarehouseInput{
		Name:        "Bodega Centro",
		Location:    "Av. Juárez 120",
		Description: &desc,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bodega Centro", fetched.Name)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, desc, *fetched.Description)

	newLocation := "Calle Hidalgo 45"
	updated, err := svc.Update(ctx, created.ID, UpdateWarehouseInput{Location: &newLocation})
	require.NoError(t, err)
	assert.Equal(t, newLocation, updated.Location)
	assert.Equal(t, "Bodega Centro", updated.Name)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestWarehouseDeleteDetachesItems(t *testing.T) {
	t.Parallel()

	db := setupWarehousesTestDB(t)
	svc := newWarehousesService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateWarehouseInput{
		Name:     "Bodega Norte",
		Location: "Parque Industrial 8",
	})
	require.NoError(t, err)

	item := models.InventoryItem{
		Category:    enums.ItemCategoryChairs,
		Product:     "Silla Tiffany",
		OnHand:      40,
		WarehouseID: &created.ID,
	}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	var survivor models.InventoryItem
	require.NoError(t, db.First(&survivor, "id = ?", item.ID).Error)
	assert.Nil(t, survivor.WarehouseID)
	assert.Equal(t, 40, survivor.OnHand)
}

func TestWarehouseGetUnknownID(t *testing.T) {
	t.Parallel()

	svc := newWarehousesService(t, setupWarehousesTestDB(t))

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
