package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/usecase"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and SnapshotRunner implements usecase.SnapshotRunner.
var (
	_ inventory.TxRunner     = (*TxRunner)(nil)
	_ usecase.SnapshotRunner = (*SnapshotRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción de escritura.
// Las escrituras quedan serializadas: SQLite abre con BEGIN IMMEDIATE y PostgreSQL toma un advisory lock.
type TxRunner struct {
	db      *sqlx.DB
	dialect Dialect
}

// NewTxRunner construye el runner con la conexión.
func NewTxRunner(db *sqlx.DB, dialect Dialect) *TxRunner {
	return &TxRunner{db: db, dialect: dialect}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Un error de fn se devuelve tal cual (junto al de rollback si lo hubo); un panic revierte y se relanza.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Set) error) error {
	return runTx(ctx, r.db, r.dialect, nil, true, fn)
}

// SnapshotRunner ejecuta lecturas en una transacción de solo lectura: todas las consultas de fn
// ven el mismo estado confirmado sin tomar el lock de escritura.
// SQLite abre un BEGIN diferido (snapshot WAL); PostgreSQL usa READ ONLY REPEATABLE READ.
type SnapshotRunner struct {
	db      *sqlx.DB
	dialect Dialect
}

// NewSnapshotRunner construye el runner de lecturas.
func NewSnapshotRunner(db *sqlx.DB, dialect Dialect) *SnapshotRunner {
	return &SnapshotRunner{db: db, dialect: dialect}
}

// Run ejecuta fn dentro de la transacción de solo lectura.
func (r *SnapshotRunner) Run(ctx context.Context, fn func(repos repository.Set) error) error {
	return runTx(ctx, r.db, r.dialect, r.dialect.snapshotOptions(), false, fn)
}

func runTx(ctx context.Context, db *sqlx.DB, dialect Dialect, opts *sql.TxOptions, lock bool, fn func(repos repository.Set) error) (err error) {
	tx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if lock {
		if err := dialect.lockWriters(ctx, tx); err != nil {
			return storageErr("lock writers", err)
		}
	}
	if err := fn(newSet(tx, dialect)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storageErr("commit transaction", err)
	}
	return nil
}
