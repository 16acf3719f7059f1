package repository

import (
	"context"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de movimientos.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListByProduct devuelve los movimientos del producto, del más antiguo al más reciente.
	ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error)
	// ListWithProduct devuelve los movimientos de todos los productos, del más reciente al más antiguo.
	// typeFilter nil = todos.
	ListWithProduct(ctx context.Context, typeFilter *entity.MovementType) ([]*entity.MovementView, error)
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
	// NetByProduct devuelve, por producto, entradas menos salidas.
	NetByProduct(ctx context.Context) (map[string]int, error)
}
