// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER (cada página): Título  │  Generado el: fecha              │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Precio | Stock | Categoría | Fecha      │
//	│  ...                                                              │
//	│  FOOTER (cada página): Página N de M                              │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 44, Green: 62, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 243, Blue: 246}
)

// anchos de columna sobre la grilla de 12
var columnSizes = []int{2, 3, 1, 1, 3, 2}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appreport.Generator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador. author queda en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// ContentType tipo MIME del documento.
func (g *MarotoReportGenerator) ContentType() string { return "application/pdf" }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(_ context.Context, snapshot appreport.Snapshot) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(snapshot.Title, true).
		WithAuthor(g.author, true).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.Bottom,
			Size:    8,
			Color:   colorGray,
		}).
		Build()

	m := maroto.New(cfg)

	// Encabezado repetido en cada página
	if err := m.RegisterHeader(headerRows(snapshot)...); err != nil {
		return nil, fmt.Errorf("pdf: registrar encabezado: %w", err)
	}

	for i, r := range snapshot.Rows() {
		m.AddRows(detailRow(r, i%2 == 1))
	}
	m.AddRows(line.NewRow(4))
	m.AddRows(totalRow(len(snapshot.Products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: título y fecha de generación, seguidos de la cabecera de la tabla.
func headerRows(snapshot appreport.Snapshot) []core.Row {
	title := row.New(12).Add(
		col.New(8).Add(
			text.New(snapshot.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado el: "+snapshot.GeneratedAt.Format(appreport.DateLayout), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 4,
			}),
		),
	)
	return []core.Row{
		title,
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}),
		tableHeaderRow(),
	}
}

// tableHeaderRow: cabecera de la tabla con fondo oscuro.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(appreport.Columns))
	for i, label := range appreport.Columns {
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: columnAlign(i),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// detailRow: una fila por producto, con franjas alternas.
func detailRow(values []string, striped bool) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: columnAlign(i), Top: 1.5, Left: 1, Right: 1,
		})))
	}
	r := row.New(7).Add(cols...)
	if striped {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// totalRow: cantidad de productos del reporte.
func totalRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Total de productos: %d", count), props.Text{
			Style: fontstyle.Italic, Size: 8, Color: colorGray, Align: align.Right,
		})),
	)
}

// precio y stock alineados a la derecha
func columnAlign(i int) align.Type {
	if i == 2 || i == 3 {
		return align.Right
	}
	return align.Left
}
