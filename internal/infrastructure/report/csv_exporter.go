package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	appreport "github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/report"
)

var _ appreport.Generator = (*CSVExporter)(nil)

// CSVExporter escribe la instantánea como CSV UTF-8 con una fila de encabezados.
type CSVExporter struct{}

// NewCSVExporter construye el exportador CSV.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// ContentType tipo MIME del documento.
func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// Generate genera el CSV completo en memoria.
func (e *CSVExporter) Generate(_ context.Context, snapshot appreport.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(appreport.Columns); err != nil {
		return nil, fmt.Errorf("csv: encabezados: %w", err)
	}
	if err := w.WriteAll(snapshot.Rows()); err != nil {
		return nil, fmt.Errorf("csv: filas: %w", err)
	}
	return buf.Bytes(), nil
}
