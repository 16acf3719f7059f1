package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/inventory"
)

// AddProductRequest datos ingresados por el usuario para crear un producto.
// Precio y stock llegan como texto; el servicio los valida aunque el llamador ya lo haya hecho.
type AddProductRequest struct {
	Code         string
	Name         string
	Price        string
	Stock        string
	CategoryName string // vacío = sin categoría
}

// EditProductRequest datos ingresados por el usuario para editar un producto.
// Code debe coincidir con el código guardado: el código no se puede cambiar.
type EditProductRequest struct {
	ProductID    string
	Code         string
	Name         string
	Price        string
	Stock        string
	CategoryName string
}

// EditResult producto editado y el movimiento que justificó el cambio de stock (nil si no hubo).
type EditResult struct {
	Product  *entity.Product
	Movement *entity.Movement
}

// AddResult producto creado y su movimiento de stock inicial (nil si el stock inicial es 0).
type AddResult struct {
	Product  *entity.Product
	Movement *entity.Movement
}

type parsedFields struct {
	code  string
	name  string
	price decimal.Decimal
	stock int
}

func parseFields(code, name, price, stock string) (parsedFields, error) {
	var f parsedFields
	var err error
	if f.code, err = inventory.RequireText("el código", code); err != nil {
		return f, err
	}
	if f.name, err = inventory.RequireText("el nombre", name); err != nil {
		return f, err
	}
	if f.price, err = inventory.ParsePrice(price); err != nil {
		return f, err
	}
	if f.stock, err = inventory.ParseStock(stock); err != nil {
		return f, err
	}
	return f, nil
}
