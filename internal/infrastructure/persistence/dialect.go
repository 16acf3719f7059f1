package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

// Dialect identifica el motor relacional detrás del Store.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// writerLockKey es la clave del advisory lock que serializa escrituras en PostgreSQL.
const writerLockKey = 7310452

func (d Dialect) goose() goose.Dialect {
	if d == DialectPostgres {
		return goose.DialectPostgres
	}
	return goose.DialectSQLite3
}

// forUpdate agrega el bloqueo de fila donde el motor lo soporta. En SQLite la transacción
// ya tiene el lock de escritura (_txlock=immediate).
func (d Dialect) forUpdate(query string) string {
	if d == DialectPostgres {
		return query + " FOR UPDATE"
	}
	return query
}

// snapshotOptions opciones de la transacción de lectura consistente. En SQLite el driver ignora
// el aislamiento y ReadOnly evita el BEGIN IMMEDIATE.
func (d Dialect) snapshotOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}

// lockWriters serializa las transacciones de escritura. En PostgreSQL toma un advisory lock
// que se libera solo con el commit o rollback; en SQLite BEGIN IMMEDIATE ya lo garantiza.
func (d Dialect) lockWriters(ctx context.Context, tx *sqlx.Tx) error {
	if d != DialectPostgres {
		return nil
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(`SELECT pg_advisory_xact_lock(?)`), writerLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	return nil
}
