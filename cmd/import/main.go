package main

import (
	"context"
	"flag"
	"os"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/catalogimport"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/bootstrap"
)

func main() {
	fileFlag := flag.String("file", "", "CSV con el encabezado del reporte exportado")
	encFlag := flag.String("encoding", "auto", "codificación: auto, utf-8 o iso-8859-1")
	flag.Parse()

	ctx := context.Background()
	rt, err := bootstrap.Open(ctx)
	if err != nil {
		panic("iniciar aplicación: " + err.Error())
	}
	defer rt.Close()
	log := rt.Log

	if *fileFlag == "" {
		log.Fatal().Msg("falta -file")
	}
	enc, err := catalogimport.ParseEncoding(*encFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}
	f, err := os.Open(*fileFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir archivo")
	}
	defer f.Close()

	summary, err := catalogimport.NewImporter(rt.Inventory, rt.Queries, log).Import(ctx, f, enc)
	if err != nil {
		log.Fatal().Err(err).Msg("importar catálogo")
	}
	for _, failure := range summary.Failures {
		log.Warn().Int("linea", failure.Line).Str("codigo", failure.Code).Err(failure.Err).Msg("fila rechazada")
	}
	log.Info().
		Int("productos", summary.Products).
		Strs("categorias", summary.Categories).
		Int("rechazadas", len(summary.Failures)).
		Msg("importación terminada")
}
