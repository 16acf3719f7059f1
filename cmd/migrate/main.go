package main

import (
	"context"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/bootstrap"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/infrastructure/persistence"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := bootstrap.NewLogger(cfg)

	ctx := context.Background()
	store, err := persistence.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DB.Driver).Msg("abrir almacén")
	}
	defer store.Close()

	applied, err := store.Migrate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	version, err := store.MigrationVersion(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer versión del esquema")
	}
	log.Info().Int("aplicadas", applied).Int64("version", version).Str("db", cfg.DB.Driver).Msg("esquema al día")
}
