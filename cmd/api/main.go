package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/bootstrap"
	httpRouter "github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/interfaces/http"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/validator"
)

func main() {
	ctx := context.Background()
	rt, err := bootstrap.Open(ctx)
	if err != nil {
		panic("iniciar aplicación: " + err.Error())
	}
	defer rt.Close()

	log := rt.Log
	cfg := rt.Config
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Msg("iniciando aplicación")

	v, err := validator.NewDefaultValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("validador")
	}

	rt.Inventory.OnCatalogChanged(func(change inventory.CatalogChange) {
		log.Debug().
			Str("cambio", string(change.Kind)).
			Str("categoria_id", change.CategoryID).
			Int64("desasociados", change.DetachedProducts).
			Msg("catálogo modificado")
	})

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		Inventory: rt.Inventory,
		Queries:   rt.Queries,
		Reports:   rt.Reports,
		Validator: v,
		Log:       log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API local escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
