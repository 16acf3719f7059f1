package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel se muestra en lugar del nombre de categoría cuando el producto no tiene una.
const UncategorizedLabel = "Sin categoría"

// Product representa un producto del inventario.
// Stock siempre coincide con la suma con signo de sus movimientos; solo InventoryService lo modifica.
type Product struct {
	ID         string          `db:"id"`
	Code       string          `db:"codigo"` // clave de negocio, inmutable
	Name       string          `db:"nombre"`
	Price      decimal.Decimal `db:"precio"`
	Stock      int             `db:"stock"`
	CategoryID *string         `db:"categoria_id"` // nil = sin categoría
	CreatedAt  time.Time       `db:"fecha_creacion"`
}

// HasCategory indica si el producto referencia una categoría.
func (p *Product) HasCategory() bool {
	return p.CategoryID != nil && *p.CategoryID != ""
}

// ProductView es la proyección de lectura de un producto con el nombre de su categoría.
type ProductView struct {
	Product
	CategoryName *string `db:"categoria_nombre"`
}

// CategoryLabel devuelve el nombre de la categoría o UncategorizedLabel.
func (v *ProductView) CategoryLabel() string {
	if v.CategoryName == nil || *v.CategoryName == "" {
		return UncategorizedLabel
	}
	return *v.CategoryName
}

// Uncategorized indica si el producto quedó sin categoría.
func (v *ProductView) Uncategorized() bool {
	return v.CategoryName == nil || *v.CategoryName == ""
}
