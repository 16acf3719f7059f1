// Package report arma los reportes de productos a partir de una única lectura del catálogo.
// Los generadores reciben esa instantánea y nunca consultan el almacén.
package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
)

// Format formato de salida del reporte.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat acepta "csv" o "pdf" sin distinguir mayúsculas.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: formato de reporte desconocido %q", domain.ErrInvalidInput, s)
}

// Columns encabezados de las columnas del reporte (CSV y PDF).
var Columns = []string{"Código", "Nombre", "Precio", "Stock", "Categoría", "Fecha Creación"}

// DateLayout formato de fechas en los reportes.
const DateLayout = "2006-01-02 15:04:05"

// Snapshot estado del catálogo leído una sola vez.
type Snapshot struct {
	Title       string
	GeneratedAt time.Time
	Products    []*entity.ProductView
}

// Rows devuelve las filas del reporte como texto, en el orden de Columns.
func (s Snapshot) Rows() [][]string {
	rows := make([][]string, 0, len(s.Products))
	for _, p := range s.Products {
		rows = append(rows, []string{
			p.Code,
			p.Name,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Stock),
			p.CategoryLabel(),
			p.CreatedAt.Local().Format(DateLayout),
		})
	}
	return rows
}

// Generator convierte una instantánea en un documento.
type Generator interface {
	Generate(ctx context.Context, snapshot Snapshot) ([]byte, error)
	ContentType() string
}

// ProductLister fuente de la instantánea (QueryFacade).
type ProductLister interface {
	ListProductsWithCategory(ctx context.Context) ([]*entity.ProductView, error)
}

// Document reporte generado.
type Document struct {
	Format      Format
	ContentType string
	Filename    string
	Data        []byte
	Rows        int
}

// UseCase exporta el catálogo de productos en los formatos registrados.
type UseCase struct {
	products   ProductLister
	generators map[Format]Generator
	title      string
	now        func() time.Time
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(products ProductLister, title string, generators map[Format]Generator) *UseCase {
	return &UseCase{products: products, generators: generators, title: title, now: time.Now}
}

// Snapshot lee el catálogo una vez. Falla con domain.ErrNotFound si no hay productos.
func (uc *UseCase) Snapshot(ctx context.Context) (Snapshot, error) {
	products, err := uc.products.ListProductsWithCategory(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if len(products) == 0 {
		return Snapshot{}, fmt.Errorf("%w: no hay datos para exportar", domain.ErrNotFound)
	}
	return Snapshot{Title: uc.title, GeneratedAt: uc.now(), Products: products}, nil
}

// Export genera el reporte en el formato pedido.
func (uc *UseCase) Export(ctx context.Context, format Format) (*Document, error) {
	gen, ok := uc.generators[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de reporte no disponible %q", domain.ErrInvalidInput, format)
	}
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data, err := gen.Generate(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("generar reporte %s: %w", format, err)
	}
	return &Document{
		Format:      format,
		ContentType: gen.ContentType(),
		Filename:    fmt.Sprintf("productos_%s.%s", snapshot.GeneratedAt.Format("20060102_150405"), format),
		Data:        data,
		Rows:        len(snapshot.Products),
	}, nil
}
