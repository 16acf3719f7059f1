package persistence

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // driver SQLite en Go puro

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/config"
)

const sqliteDriver = "sqlite"

func init() {
	// sqlx no conoce el nombre "sqlite" de modernc; sus placeholders son "?".
	sqlx.BindDriver(sqliteDriver, sqlx.QUESTION)
}

// sqliteDSN arma el DSN de modernc: WAL para lectores concurrentes, llaves foráneas activas
// y BEGIN IMMEDIATE para que cada transacción tome el lock de escritura al iniciar.
func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")
	if path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	q.Set("_time_format", "sqlite")
	q.Set("_txlock", "immediate")
	return "file:" + path + "?" + q.Encode()
}

// openSQLite abre (o crea) la base SQLite del archivo configurado.
func openSQLite(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(sqliteDriver, sqliteDSN(cfg.SQLitePath))
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if cfg.SQLitePath == ":memory:" {
		// cada conexión nueva sería una base distinta
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
