package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appreport "github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/report"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/infrastructure/report"
)

func TestCSVExporter_EncabezadosYFilas(t *testing.T) {
	pinturas := "Pinturas, esmaltes"
	snapshot := appreport.Snapshot{
		Title:       "Reporte",
		GeneratedAt: time.Now(),
		Products: []*entity.ProductView{
			{Product: entity.Product{Code: "P-1", Name: "Ñandú \"azul\"", Price: decimal.RequireFromString("12.5"), Stock: 3,
				CreatedAt: time.Date(2026, 5, 1, 8, 30, 0, 0, time.Local)}, CategoryName: &pinturas},
			{Product: entity.Product{Code: "P-2", Name: "Rodillo", Price: decimal.Zero, Stock: 0,
				CreatedAt: time.Date(2026, 5, 2, 9, 0, 0, 0, time.Local)}},
		},
	}

	data, err := report.NewCSVExporter().Generate(context.Background(), snapshot)
	require.NoError(t, err)
	assert.True(t, utf8.Valid(data))

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Código", "Nombre", "Precio", "Stock", "Categoría", "Fecha Creación"}, records[0])
	assert.Equal(t, []string{"P-1", "Ñandú \"azul\"", "12.50", "3", "Pinturas, esmaltes", "2026-05-01 08:30:00"}, records[1])
	assert.Equal(t, []string{"P-2", "Rodillo", "0.00", "0", entity.UncategorizedLabel, "2026-05-02 09:00:00"}, records[2])
}
