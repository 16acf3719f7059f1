package persistence

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate aplica las migraciones pendientes y devuelve cuántas se ejecutaron.
func (s *Store) Migrate(ctx context.Context) (int, error) {
	provider, err := s.migrationProvider()
	if err != nil {
		return 0, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("aplicar migraciones: %w", err)
	}
	for _, r := range results {
		s.log.Info().
			Str("migracion", r.Source.Path).
			Dur("duracion", r.Duration).
			Msg("migración aplicada")
	}
	return len(results), nil
}

// MigrationVersion devuelve la versión actual del esquema.
func (s *Store) MigrationVersion(ctx context.Context) (int64, error) {
	provider, err := s.migrationProvider()
	if err != nil {
		return 0, err
	}
	v, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("versión de esquema: %w", err)
	}
	return v, nil
}

func (s *Store) migrationProvider() (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migraciones embebidas: %w", err)
	}
	provider, err := goose.NewProvider(s.dialect.goose(), s.db.DB, migrations)
	if err != nil {
		return nil, fmt.Errorf("crear proveedor goose: %w", err)
	}
	return provider, nil
}
