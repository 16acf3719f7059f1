package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Category vacío = sin categoría.
type CreateProductRequest struct {
	Code     string     `json:"code" validate:"notblank,max=50"`
	Name     string     `json:"name" validate:"notblank,max=200"`
	Price    NumberText `json:"price" validate:"required,decimal"`
	Stock    NumberText `json:"stock" validate:"required"`
	Category string     `json:"category" validate:"max=100"`
}

// UpdateProductRequest entrada para editar un producto. Code debe coincidir con el guardado.
type UpdateProductRequest struct {
	Code     string     `json:"code" validate:"notblank,max=50"`
	Name     string     `json:"name" validate:"notblank,max=200"`
	Price    NumberText `json:"price" validate:"required,decimal"`
	Stock    NumberText `json:"stock" validate:"required"`
	Category string     `json:"category" validate:"max=100"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	CategoryID    *string         `json:"category_id"`
	Category      string          `json:"category"`
	Uncategorized bool            `json:"uncategorized"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProductMutationResponse producto creado o editado y el movimiento que generó (si hubo).
type ProductMutationResponse struct {
	Product  ProductResponse   `json:"product"`
	Movement *MovementResponse `json:"movement"`
}

// NewProductResponse mapea la vista de lectura a la respuesta.
func NewProductResponse(v *entity.ProductView) ProductResponse {
	return ProductResponse{
		ID:            v.ID,
		Code:          v.Code,
		Name:          v.Name,
		Price:         v.Price,
		Stock:         v.Stock,
		CategoryID:    v.CategoryID,
		Category:      v.CategoryLabel(),
		Uncategorized: v.Uncategorized(),
		CreatedAt:     v.CreatedAt,
	}
}

// NewProductList mapea una lista de productos.
func NewProductList(list []*entity.ProductView) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductResponse(p))
	}
	return out
}
