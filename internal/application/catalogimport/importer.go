// Package catalogimport carga productos desde un CSV con los mismos encabezados del reporte exportado.
// Cada fila pasa por InventoryService: es atómica y su stock inicial queda en el libro de movimientos.
package catalogimport

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/logger"
)

// Encoding codificación del archivo de entrada.
type Encoding string

const (
	EncodingAuto   Encoding = "auto" // UTF-8 si el contenido es válido, si no ISO-8859-1
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "iso-8859-1"
)

// ParseEncoding acepta auto, utf-8/utf8 e iso-8859-1/latin1.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return EncodingLatin1, nil
	}
	return "", fmt.Errorf("%w: codificación desconocida %q", domain.ErrInvalidInput, s)
}

// Inventory operaciones de escritura que usa el importador (InventoryService).
type Inventory interface {
	AddCategory(ctx context.Context, name string) (*entity.Category, error)
	AddProduct(ctx context.Context, req inventory.AddProductRequest) (*inventory.AddResult, error)
}

// CategoryLister lista las categorías existentes.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// LineError fila rechazada del archivo.
type LineError struct {
	Line int
	Code string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("línea %d (%s): %v", e.Line, e.Code, e.Err)
}

// Summary resultado de una importación.
type Summary struct {
	Products   int
	Categories []string
	Failures   []LineError
}

// Importer importa productos en lote.
type Importer struct {
	inv        Inventory
	categories CategoryLister
	log        *logger.Logger
}

// NewImporter construye el importador.
func NewImporter(inv Inventory, categories CategoryLister, log *logger.Logger) *Importer {
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{inv: inv, categories: categories, log: log}
}

type column int

const (
	colCode column = iota
	colName
	colPrice
	colStock
	colCategory
	columnCount
)

var headerAliases = map[string]column{
	"código": colCode, "codigo": colCode, "code": colCode,
	"nombre": colName, "name": colName,
	"precio": colPrice, "price": colPrice,
	"stock": colStock,
	"categoría": colCategory, "categoria": colCategory, "category": colCategory,
}

// Import lee el CSV completo. Las filas inválidas se informan en Summary.Failures;
// una falla de almacenamiento detiene la importación.
func (im *Importer) Import(ctx context.Context, r io.Reader, enc Encoding) (*Summary, error) {
	reader, err := decode(r, enc)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: leer encabezados: %v", domain.ErrInvalidInput, err)
	}
	index, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	known, err := im.knownCategories(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}

		req := inventory.AddProductRequest{
			Code:         field(record, index[colCode]),
			Name:         field(record, index[colName]),
			Price:        field(record, index[colPrice]),
			Stock:        field(record, index[colStock]),
			CategoryName: field(record, index[colCategory]),
		}
		if req.CategoryName == entity.UncategorizedLabel {
			req.CategoryName = ""
		}

		if err := im.importRow(ctx, req, known, summary); err != nil {
			if errors.Is(err, domain.ErrStorage) {
				return summary, fmt.Errorf("línea %d: %w", line, err)
			}
			summary.Failures = append(summary.Failures, LineError{Line: line, Code: req.Code, Err: err})
		}
	}

	im.log.Info().
		Int("productos", summary.Products).
		Int("categorias", len(summary.Categories)).
		Int("rechazadas", len(summary.Failures)).
		Msg("importación terminada")
	return summary, nil
}

func (im *Importer) importRow(ctx context.Context, req inventory.AddProductRequest, known map[string]bool, summary *Summary) error {
	if name := strings.TrimSpace(req.CategoryName); name != "" && !known[name] {
		if _, err := im.inv.AddCategory(ctx, name); err != nil && !errors.Is(err, domain.ErrDuplicateName) {
			return err
		}
		known[name] = true
		summary.Categories = append(summary.Categories, name)
	}
	if _, err := im.inv.AddProduct(ctx, req); err != nil {
		return err
	}
	summary.Products++
	return nil
}

func (im *Importer) knownCategories(ctx context.Context) (map[string]bool, error) {
	list, err := im.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(list))
	for _, c := range list {
		known[c.Name] = true
	}
	return known, nil
}

// decode devuelve el contenido como UTF-8 sin BOM.
func decode(r io.Reader, enc Encoding) (io.Reader, error) {
	if enc == EncodingLatin1 {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))
	if utf8.Valid(data) {
		return bytes.NewReader(data), nil
	}
	if enc == EncodingUTF8 {
		return nil, fmt.Errorf("%w: el archivo no es UTF-8 válido", domain.ErrInvalidInput)
	}
	return transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder()), nil
}

func mapHeader(header []string) (map[column]int, error) {
	fold := cases.Fold()
	index := make(map[column]int, columnCount)
	for i, h := range header {
		if c, ok := headerAliases[fold.String(strings.TrimSpace(h))]; ok {
			if _, dup := index[c]; !dup {
				index[c] = i
			}
		}
	}
	var missing []string
	for _, c := range []column{colCode, colName, colPrice, colStock} {
		if _, ok := index[c]; !ok {
			missing = append(missing, []string{"Código", "Nombre", "Precio", "Stock"}[c])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan columnas %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if _, ok := index[colCategory]; !ok {
		index[colCategory] = -1
	}
	return index, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
