// Package bootstrap arma las dependencias compartidas por los comandos: configuración, logger,
// almacén migrado y los casos de uso del inventario.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/report"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/usecase"
	infrapdf "github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/infrastructure/pdf"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/infrastructure/persistence"
	infrareport "github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/infrastructure/report"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/config"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/logger"
)

// Runtime dependencias listas para usar. Close libera el almacén.
type Runtime struct {
	Config    *config.Config
	Log       *logger.Logger
	Store     *persistence.Store
	Inventory *inventory.Service
	Queries   *usecase.QueryFacade
	Reports   *report.UseCase
}

// NewLogger crea el logger según la configuración.
func NewLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
}

// Open carga la configuración, abre el almacén, aplica las migraciones pendientes y arma los casos de uso.
func Open(ctx context.Context) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := NewLogger(cfg)

	store, err := persistence.Open(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("abrir almacén %s: %w", cfg.DB.Driver, err)
	}
	if _, err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migrar almacén: %w", err)
	}

	queries := usecase.NewQueryFacade(store.Repositories(), store.SnapshotRunner())
	return &Runtime{
		Config:    cfg,
		Log:       log,
		Store:     store,
		Inventory: inventory.NewService(store.TxRunner(), log),
		Queries:   queries,
		Reports: report.NewUseCase(queries, cfg.Report.Title, map[report.Format]report.Generator{
			report.FormatCSV: infrareport.NewCSVExporter(),
			report.FormatPDF: infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		}),
	}, nil
}

// Close cierra el almacén.
func (r *Runtime) Close() error {
	return r.Store.Close()
}
