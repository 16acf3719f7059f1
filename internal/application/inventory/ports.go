package inventory

import (
	"context"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de inventario: si fn devuelve error nada queda persistido.
// Las transacciones de escritura quedan serializadas por el motor.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Set) error) error
}

// CatalogChangeKind tipo de cambio notificado a los consumidores del catálogo.
type CatalogChangeKind string

const (
	CategoryRenamed CatalogChangeKind = "category_renamed"
	CategoryDeleted CatalogChangeKind = "category_deleted"
)

// CatalogChange describe un cambio confirmado que obliga a refrescar vistas del catálogo.
type CatalogChange struct {
	Kind             CatalogChangeKind
	CategoryID       string
	DetachedProducts int64 // solo para CategoryDeleted
}

// CatalogListener recibe los cambios de catálogo después del commit.
type CatalogListener func(CatalogChange)
