package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/config"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/logger"
)

// Store es el almacén relacional de la aplicación (SQLite o PostgreSQL detrás de sqlx).
type Store struct {
	db      *sqlx.DB
	pool    *pgxpool.Pool // solo con PostgreSQL
	dialect Dialect
	log     *logger.Logger
}

// Open abre el almacén indicado por cfg.Driver y verifica la conexión. log puede ser nil.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch cfg.Driver {
	case config.DriverSQLite, "":
		db, err := openSQLite(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{db: db, dialect: DialectSQLite, log: log}, nil
	case config.DriverPostgres:
		db, pool, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{db: db, pool: pool, dialect: DialectPostgres, log: log}, nil
	}
	return nil, fmt.Errorf("driver de base de datos no soportado: %q", cfg.Driver)
}

// DB devuelve la conexión sqlx subyacente.
func (s *Store) DB() *sqlx.DB { return s.db }

// Dialect devuelve el motor en uso.
func (s *Store) Dialect() Dialect { return s.dialect }

// Repositories devuelve repositorios fuera de transacción, para lecturas.
func (s *Store) Repositories() repository.Set {
	return newSet(s.db, s.dialect)
}

// TxRunner devuelve el ejecutor de transacciones de escritura sobre este almacén.
func (s *Store) TxRunner() *TxRunner {
	return NewTxRunner(s.db, s.dialect)
}

// SnapshotRunner devuelve el ejecutor de lecturas consistentes (transacción de solo lectura).
func (s *Store) SnapshotRunner() *SnapshotRunner {
	return NewSnapshotRunner(s.db, s.dialect)
}

// Close libera la conexión (y el pool pgx si existe).
func (s *Store) Close() error {
	err := s.db.Close()
	if s.pool != nil {
		s.pool.Close()
	}
	if err != nil {
		return fmt.Errorf("cerrar base de datos: %w", err)
	}
	return nil
}

func newSet(q sqlx.ExtContext, dialect Dialect) repository.Set {
	return repository.Set{
		Categories: NewCategoryRepository(q),
		Products:   NewProductRepository(q, dialect),
		Movements:  NewMovementRepository(q),
	}
}
