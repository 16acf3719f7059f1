package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
)

// NewProduct datos validados para insertar un producto.
type NewProduct struct {
	Code       string
	Name       string
	Price      decimal.Decimal
	Stock      int
	CategoryID *string // nil = sin categoría
}

// ProductChanges valores nuevos de un producto existente. El código no se modifica.
type ProductChanges struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	Stock      int
	CategoryID *string
}

// ProductCatalog administra los productos y su stock actual.
// No registra movimientos: eso le corresponde a InventoryService en la misma transacción.
type ProductCatalog struct {
	products   repository.ProductRepository
	categories *CategoryRegistry
}

// NewProductCatalog construye el catálogo.
func NewProductCatalog(products repository.ProductRepository, categories *CategoryRegistry) *ProductCatalog {
	return &ProductCatalog{products: products, categories: categories}
}

// LookupByCode obtiene un producto por código o domain.ErrNotFound.
func (c *ProductCatalog) LookupByCode(ctx context.Context, code string) (*entity.Product, error) {
	code = strings.TrimSpace(code)
	product, err := c.products.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto con código %q", domain.ErrNotFound, code)
	}
	return product, nil
}

// LookupByID obtiene un producto por id o domain.ErrNotFound.
func (c *ProductCatalog) LookupByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := c.products.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return product, nil
}

// Insert crea un producto con el stock inicial indicado.
func (c *ProductCatalog) Insert(ctx context.Context, in NewProduct) (*entity.Product, error) {
	code, err := inventory.RequireText("el código", in.Code)
	if err != nil {
		return nil, err
	}
	name, err := inventory.RequireText("el nombre", in.Name)
	if err != nil {
		return nil, err
	}
	if err := inventory.ValidatePrice(in.Price); err != nil {
		return nil, err
	}
	if err := inventory.ValidateStock(in.Stock); err != nil {
		return nil, err
	}
	if err := c.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	existing, err := c.products.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateCode, code)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:         id,
		Code:       code,
		Name:       name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
		CreatedAt:  now(),
	}
	if err := c.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update guarda los nuevos valores y devuelve el delta de stock (nuevo - anterior).
// La fila queda bloqueada hasta el fin de la transacción.
func (c *ProductCatalog) Update(ctx context.Context, in ProductChanges) (*entity.Product, int, error) {
	name, err := inventory.RequireText("el nombre", in.Name)
	if err != nil {
		return nil, 0, err
	}
	if err := inventory.ValidatePrice(in.Price); err != nil {
		return nil, 0, err
	}
	if err := inventory.ValidateStock(in.Stock); err != nil {
		return nil, 0, err
	}
	product, err := c.products.GetForUpdate(ctx, in.ID)
	if err != nil {
		return nil, 0, err
	}
	if product == nil {
		return nil, 0, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ID)
	}
	if err := c.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, 0, err
	}

	previous := product.Stock
	product.Name = name
	product.Price = in.Price
	product.Stock = in.Stock
	product.CategoryID = in.CategoryID
	if err := c.products.Update(ctx, product); err != nil {
		return nil, 0, err
	}
	return product, product.Stock - previous, nil
}

// Remove elimina el producto. Sus movimientos deben borrarse antes en la misma transacción.
func (c *ProductCatalog) Remove(ctx context.Context, id string) error {
	return c.products.Delete(ctx, id)
}

// Search devuelve los productos cuyo código, nombre o categoría contienen term, ordenados por nombre.
func (c *ProductCatalog) Search(ctx context.Context, term string) ([]*entity.ProductView, error) {
	list, err := c.products.ListWithCategory(ctx)
	if err != nil {
		return nil, err
	}
	list = inventory.FilterProducts(list, term)
	inventory.SortProducts(list)
	return list, nil
}

func (c *ProductCatalog) checkCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	ok, err := c.categories.Exists(ctx, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: categoría %s", domain.ErrInvalidCategory, *categoryID)
	}
	return nil
}
