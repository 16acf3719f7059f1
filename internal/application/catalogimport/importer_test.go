package catalogimport_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/catalogimport"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/usecase"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/infrastructure/persistence/persistencetest"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/logger"
)

type env struct {
	importer *catalogimport.Importer
	svc      *inventory.Service
	queries  *usecase.QueryFacade
}

func newEnv(t *testing.T) env {
	t.Helper()
	store := persistencetest.NewStore(t)
	repos := store.Repositories()
	svc := inventory.NewService(store.TxRunner(), logger.Nop())
	return env{
		importer: catalogimport.NewImporter(svc, usecase.NewQueryFacade(repos, nil), logger.Nop()),
		svc:      svc,
		queries:  usecase.NewQueryFacade(repos, nil),
	}
}

const exported = "\uFEFFCódigo,Nombre,Precio,Stock,Categoría,Fecha Creación\n" +
	"T1,Martillo,9.99,10,Herramientas,2026-01-01 10:00:00\n" +
	"T2,Destornillador,4.50,0,Herramientas,2026-01-01 10:00:00\n" +
	"P1,Pintura,12.00,3,Sin categoría,2026-01-01 10:00:00\n"

func TestImport_ArchivoExportado(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	summary, err := e.importer.Import(ctx, strings.NewReader(exported), catalogimport.EncodingAuto)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Products)
	assert.Equal(t, []string{"Herramientas"}, summary.Categories)
	assert.Empty(t, summary.Failures)

	products, err := e.queries.ListProductsWithCategory(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Destornillador", products[0].Name)
	assert.Equal(t, "Herramientas", products[0].CategoryLabel())
	assert.True(t, products[2].Uncategorized(), "Pintura queda sin categoría")

	discrepancies, err := e.queries.AuditLedger(ctx)
	require.NoError(t, err)
	assert.Empty(t, discrepancies, "el stock importado queda registrado en el libro")

	movements, err := e.queries.ListMovementsWithProductName(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, movements, 2, "solo las filas con stock inicial generan entrada")
}

func TestImport_Latin1(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	content, err := charmap.ISO8859_1.NewEncoder().String(
		"Código,Nombre,Precio,Stock,Categoría\nA1,Piñata,1.00,2,Fiestas Ñ\n")
	require.NoError(t, err)

	summary, err := e.importer.Import(ctx, bytes.NewReader([]byte(content)), catalogimport.EncodingAuto)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Products)
	assert.Equal(t, []string{"Fiestas Ñ"}, summary.Categories)

	products, err := e.queries.ListProductsWithCategory(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Piñata", products[0].Name)
}

func TestImport_FilasInvalidasSeInformanPorLinea(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	_, err := e.svc.AddProduct(ctx, inventory.AddProductRequest{Code: "T1", Name: "Existente", Price: "1", Stock: "1"})
	require.NoError(t, err)

	input := "Codigo,Nombre,Precio,Stock\n" +
		"T1,Duplicado,1,1\n" +
		"T3,Precio malo,abc,1\n" +
		"\n" +
		"T4,Correcto,2.5,4\n"
	summary, err := e.importer.Import(ctx, strings.NewReader(input), catalogimport.EncodingUTF8)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Products)
	require.Len(t, summary.Failures, 2)
	assert.Equal(t, 2, summary.Failures[0].Line)
	assert.ErrorIs(t, summary.Failures[0].Err, domain.ErrDuplicateCode)
	assert.Equal(t, 3, summary.Failures[1].Line)
	assert.ErrorIs(t, summary.Failures[1].Err, domain.ErrInvalidInput)
	assert.Contains(t, summary.Failures[1].Error(), "línea 3")
}

func TestImport_FaltanColumnas(t *testing.T) {
	e := newEnv(t)

	_, err := e.importer.Import(context.Background(), strings.NewReader("Código,Nombre\nA,B\n"), catalogimport.EncodingAuto)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Precio, Stock")
}

func TestImport_UTF8Invalido(t *testing.T) {
	e := newEnv(t)

	_, err := e.importer.Import(context.Background(), bytes.NewReader([]byte("C\xf3digo,Nombre,Precio,Stock\n")), catalogimport.EncodingUTF8)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseEncoding(t *testing.T) {
	enc, err := catalogimport.ParseEncoding("Latin1")
	require.NoError(t, err)
	assert.Equal(t, catalogimport.EncodingLatin1, enc)

	_, err = catalogimport.ParseEncoding("ebcdic")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
