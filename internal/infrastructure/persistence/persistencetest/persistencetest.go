// Package persistencetest abre almacenes SQLite reales y migrados para pruebas de integración.
package persistencetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/infrastructure/persistence"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/config"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/logger"
)

// NewStore crea una base SQLite en un directorio temporal, aplica las migraciones
// y la cierra al terminar la prueba.
func NewStore(t testing.TB) *persistence.Store {
	t.Helper()
	store := OpenStore(t, logger.Nop())
	_, err := store.Migrate(context.Background())
	require.NoError(t, err)
	return store
}

// OpenStore abre una base SQLite vacía (sin migrar) que escribe en log.
func OpenStore(t testing.TB, log *logger.Logger) *persistence.Store {
	t.Helper()
	cfg := config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "inventario.db"),
		MaxConns:   4,
	}
	store, err := persistence.Open(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// MustExec ejecuta SQL directo sobre el almacén (para preparar fallas en pruebas).
func MustExec(t testing.TB, store *persistence.Store, query string, args ...any) {
	t.Helper()
	_, err := store.DB().ExecContext(context.Background(), store.DB().Rebind(query), args...)
	require.NoError(t, err)
}
