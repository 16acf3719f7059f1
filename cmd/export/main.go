package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/report"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/bootstrap"
)

func main() {
	formatFlag := flag.String("format", "csv", "formato del reporte: csv o pdf")
	outFlag := flag.String("out", ".", "archivo o directorio de salida")
	flag.Parse()

	ctx := context.Background()
	rt, err := bootstrap.Open(ctx)
	if err != nil {
		panic("iniciar aplicación: " + err.Error())
	}
	defer rt.Close()
	log := rt.Log

	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("formato")
	}
	doc, err := rt.Reports.Export(ctx, format)
	if err != nil {
		log.Fatal().Err(err).Msg("exportar reporte")
	}

	path := *outFlag
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, doc.Filename)
	}
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		log.Fatal().Err(err).Str("archivo", path).Msg("escribir reporte")
	}
	log.Info().Str("archivo", path).Int("productos", doc.Rows).Str("formato", string(doc.Format)).Msg("reporte exportado")
}
