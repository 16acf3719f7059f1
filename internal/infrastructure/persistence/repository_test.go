package persistence_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/infrastructure/persistence/persistencetest"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/logger"
)

func newID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func newProduct(t *testing.T, code string, categoryID *string) *entity.Product {
	return &entity.Product{
		ID:         newID(t),
		Code:       code,
		Name:       "Producto " + code,
		Price:      decimal.RequireFromString("9.99"),
		Stock:      0,
		CategoryID: categoryID,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestMigrate_EsIdempotente(t *testing.T) {
	store := persistencetest.NewStore(t)

	applied, err := store.Migrate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, applied, "una segunda ejecución no aplica migraciones")

	version, err := store.MigrationVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestMigrate_UsaElLoggerDelAlmacen(t *testing.T) {
	var info bytes.Buffer
	store := persistencetest.OpenStore(t, logger.New(logger.Config{Env: "production", Level: "info", Output: &info}))
	applied, err := store.Migrate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, applied)
	assert.Contains(t, info.String(), "migración aplicada")
	assert.Contains(t, info.String(), "00001_inventario.sql")

	var warn bytes.Buffer
	quiet := persistencetest.OpenStore(t, logger.New(logger.Config{Env: "production", Level: "warn", Output: &warn}))
	_, err = quiet.Migrate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, warn.String(), "LOG_LEVEL=warn descarta los mensajes de migración")
}

func TestCategoryRepo_CrudYDuplicados(t *testing.T) {
	ctx := context.Background()
	repos := persistencetest.NewStore(t).Repositories()

	tools := &entity.Category{ID: newID(t), Name: "Herramientas"}
	require.NoError(t, repos.Categories.Create(ctx, tools))

	err := repos.Categories.Create(ctx, &entity.Category{ID: newID(t), Name: "Herramientas"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	// la unicidad es exacta: otra capitalización es otra categoría
	require.NoError(t, repos.Categories.Create(ctx, &entity.Category{ID: newID(t), Name: "herramientas"}))

	got, err := repos.Categories.GetByName(ctx, "Herramientas")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tools.ID, got.ID)

	missing, err := repos.Categories.GetByID(ctx, newID(t))
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.ErrorIs(t, repos.Categories.Rename(ctx, tools.ID, "herramientas"), domain.ErrDuplicateName)
	require.NoError(t, repos.Categories.Rename(ctx, tools.ID, "Ferretería"))
	assert.ErrorIs(t, repos.Categories.Rename(ctx, newID(t), "X"), domain.ErrNotFound)

	list, err := repos.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, repos.Categories.Delete(ctx, tools.ID))
	assert.ErrorIs(t, repos.Categories.Delete(ctx, tools.ID), domain.ErrNotFound)
}

func TestProductRepo_GuardaYLeeValores(t *testing.T) {
	ctx := context.Background()
	repos := persistencetest.NewStore(t).Repositories()

	cat := &entity.Category{ID: newID(t), Name: "Herramientas"}
	require.NoError(t, repos.Categories.Create(ctx, cat))

	p := newProduct(t, "T1", &cat.ID)
	p.Price = decimal.RequireFromString("1234.50")
	p.Stock = 3
	require.NoError(t, repos.Products.Create(ctx, p))

	got, err := repos.Products.GetByCode(ctx, "T1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
	assert.True(t, got.Price.Equal(p.Price), "precio %s", got.Price)
	assert.Equal(t, 3, got.Stock)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, cat.ID, *got.CategoryID)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt), "fecha %s != %s", got.CreatedAt, p.CreatedAt)

	assert.ErrorIs(t, repos.Products.Create(ctx, newProduct(t, "T1", nil)), domain.ErrDuplicateCode)

	ghost := newID(t)
	assert.ErrorIs(t, repos.Products.Create(ctx, newProduct(t, "T2", &ghost)), domain.ErrInvalidCategory)

	none, err := repos.Products.GetByID(ctx, newID(t))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestProductRepo_UpdateNoCambiaCodigoNiFecha(t *testing.T) {
	ctx := context.Background()
	repos := persistencetest.NewStore(t).Repositories()

	p := newProduct(t, "A1", nil)
	require.NoError(t, repos.Products.Create(ctx, p))

	changed := *p
	changed.Code = "OTRO"
	changed.Name = "Martillo"
	changed.Stock = 8
	changed.CreatedAt = p.CreatedAt.Add(time.Hour)
	require.NoError(t, repos.Products.Update(ctx, &changed))

	got, err := repos.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1", got.Code)
	assert.Equal(t, "Martillo", got.Name)
	assert.Equal(t, 8, got.Stock)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))

	changed.ID = newID(t)
	assert.ErrorIs(t, repos.Products.Update(ctx, &changed), domain.ErrNotFound)
}

func TestProductRepo_DetachCategoryYListWithCategory(t *testing.T) {
	ctx := context.Background()
	repos := persistencetest.NewStore(t).Repositories()

	cat := &entity.Category{ID: newID(t), Name: "Herramientas"}
	other := &entity.Category{ID: newID(t), Name: "Pinturas"}
	require.NoError(t, repos.Categories.Create(ctx, cat))
	require.NoError(t, repos.Categories.Create(ctx, other))

	a := newProduct(t, "A", &cat.ID)
	a.Name = "Alicate"
	b := newProduct(t, "B", &cat.ID)
	b.Name = "Brocha"
	c := newProduct(t, "C", &other.ID)
	c.Name = "Cincel"
	for _, p := range []*entity.Product{c, b, a} {
		require.NoError(t, repos.Products.Create(ctx, p))
	}

	n, err := repos.Products.DetachCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	views, err := repos.Products.ListWithCategory(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Alicate", views[0].Name)
	assert.True(t, views[0].Uncategorized())
	assert.True(t, views[1].Uncategorized())
	assert.Equal(t, "Pinturas", views[2].CategoryLabel())
}

func TestMovementRepo_OrdenFiltroYNeto(t *testing.T) {
	ctx := context.Background()
	repos := persistencetest.NewStore(t).Repositories()

	p := newProduct(t, "M1", nil)
	require.NoError(t, repos.Products.Create(ctx, p))

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	movs := []*entity.Movement{
		{ID: newID(t), ProductID: p.ID, Type: entity.MovementIn, Quantity: 10, Timestamp: base},
		{ID: newID(t), ProductID: p.ID, Type: entity.MovementOut, Quantity: 3, Timestamp: base.Add(time.Minute)},
		{ID: newID(t), ProductID: p.ID, Type: entity.MovementIn, Quantity: 1, Timestamp: base.Add(2 * time.Minute)},
	}
	for _, m := range movs {
		require.NoError(t, repos.Movements.Create(ctx, m))
	}

	history, err := repos.Movements.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, movs[0].ID, history[0].ID)
	assert.Equal(t, entity.MovementOut, history[1].Type)
	assert.Equal(t, movs[2].ID, history[2].ID)

	all, err := repos.Movements.ListWithProduct(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, movs[2].ID, all[0].ID, "el más reciente primero")
	assert.Equal(t, p.Name, all[0].ProductName)

	out := entity.MovementOut
	outs, err := repos.Movements.ListWithProduct(ctx, &out)
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, 3, outs[0].Quantity)

	net, err := repos.Movements.NetByProduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{p.ID: 8}, net)

	deleted, err := repos.Movements.DeleteByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestMovementRepo_ProductoInexistente(t *testing.T) {
	repos := persistencetest.NewStore(t).Repositories()

	err := repos.Movements.Create(context.Background(), &entity.Movement{
		ID: newID(t), ProductID: newID(t), Type: entity.MovementIn, Quantity: 1, Timestamp: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrDanglingReference)
}

func TestProductRepo_DeleteConMovimientosFalla(t *testing.T) {
	ctx := context.Background()
	repos := persistencetest.NewStore(t).Repositories()

	p := newProduct(t, "D1", nil)
	require.NoError(t, repos.Products.Create(ctx, p))
	require.NoError(t, repos.Movements.Create(ctx, &entity.Movement{
		ID: newID(t), ProductID: p.ID, Type: entity.MovementIn, Quantity: 2, Timestamp: time.Now().UTC(),
	}))

	assert.ErrorIs(t, repos.Products.Delete(ctx, p.ID), domain.ErrDanglingReference)
}

func TestTxRunner_RollbackAnteError(t *testing.T) {
	ctx := context.Background()
	store := persistencetest.NewStore(t)
	boom := errors.New("boom")

	err := store.TxRunner().Run(ctx, func(repos repository.Set) error {
		require.NoError(t, repos.Categories.Create(ctx, &entity.Category{ID: newID(t), Name: "Temporal"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Repositories().Categories.GetByName(ctx, "Temporal")
	require.NoError(t, err)
	assert.Nil(t, got, "la transacción fallida no deja rastro")
}

func TestTxRunner_RollbackAntePanic(t *testing.T) {
	ctx := context.Background()
	store := persistencetest.NewStore(t)

	assert.Panics(t, func() {
		_ = store.TxRunner().Run(ctx, func(repos repository.Set) error {
			_ = repos.Categories.Create(ctx, &entity.Category{ID: newID(t), Name: "Pánico"})
			panic("falla inesperada")
		})
	})

	got, err := store.Repositories().Categories.GetByName(ctx, "Pánico")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTxRunner_Commit(t *testing.T) {
	ctx := context.Background()
	store := persistencetest.NewStore(t)

	err := store.TxRunner().Run(ctx, func(repos repository.Set) error {
		return repos.Categories.Create(ctx, &entity.Category{ID: newID(t), Name: "Persistente"})
	})
	require.NoError(t, err)

	got, err := store.Repositories().Categories.GetByName(ctx, "Persistente")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestProductRepo_GetViewPorIDYCodigo(t *testing.T) {
	ctx := context.Background()
	repos := persistencetest.NewStore(t).Repositories()

	tools := &entity.Category{ID: newID(t), Name: "Herramientas"}
	require.NoError(t, repos.Categories.Create(ctx, tools))
	hammer := newProduct(t, "T1", &tools.ID)
	loose := newProduct(t, "S1", nil)
	require.NoError(t, repos.Products.Create(ctx, hammer))
	require.NoError(t, repos.Products.Create(ctx, loose))

	view, err := repos.Products.GetViewByID(ctx, hammer.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "T1", view.Code)
	assert.Equal(t, "Herramientas", view.CategoryLabel())

	view, err = repos.Products.GetViewByCode(ctx, "S1")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, loose.ID, view.ID)
	assert.True(t, view.Uncategorized())

	view, err = repos.Products.GetViewByID(ctx, newID(t))
	require.NoError(t, err)
	assert.Nil(t, view)
	view, err = repos.Products.GetViewByCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestSnapshotRunner_NoBloqueaEscriturasYVeUnSoloEstado(t *testing.T) {
	ctx := context.Background()
	store := persistencetest.NewStore(t)

	err := store.SnapshotRunner().Run(ctx, func(repos repository.Set) error {
		before, err := repos.Categories.List(ctx)
		require.NoError(t, err)
		require.Empty(t, before)

		// una escritura concurrente debe confirmarse mientras la lectura sigue abierta
		writeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		require.NoError(t, store.TxRunner().Run(writeCtx, func(w repository.Set) error {
			return w.Categories.Create(writeCtx, &entity.Category{ID: newID(t), Name: "Concurrente"})
		}))

		after, err := repos.Categories.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, after, "la instantánea no ve escrituras confirmadas después de empezar")
		return nil
	})
	require.NoError(t, err)

	got, err := store.Repositories().Categories.GetByName(ctx, "Concurrente")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
