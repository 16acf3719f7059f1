package repository

import (
	"context"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// DetachCategory deja sin categoría a todos los productos de categoryID y devuelve cuántos cambió.
	DetachCategory(ctx context.Context, categoryID string) (int64, error)
	// GetViewByID y GetViewByCode devuelven un producto con el nombre de su categoría (LEFT JOIN).
	GetViewByID(ctx context.Context, id string) (*entity.ProductView, error)
	GetViewByCode(ctx context.Context, code string) (*entity.ProductView, error)
	// ListWithCategory devuelve todos los productos con el nombre de su categoría (LEFT JOIN).
	ListWithCategory(ctx context.Context) ([]*entity.ProductView, error)
}
