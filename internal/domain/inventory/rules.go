package inventory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
)

// Límites de las columnas productos.precio NUMERIC(12,2) y productos.stock INTEGER.
const (
	PriceDecimals      = 2
	PriceIntegerDigits = 10
	MaxStock           = math.MaxInt32
)

// maxPrice es el primer valor que ya no cabe en NUMERIC(12,2).
var maxPrice = decimal.New(1, PriceIntegerDigits)

// RequireText recorta s y falla con ErrInvalidInput si queda vacío.
func RequireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, field)
	}
	return s, nil
}

// ParsePrice interpreta el precio ingresado por el usuario.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: el precio es obligatorio", domain.ErrInvalidInput)
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: el precio debe ser un número válido", domain.ErrInvalidInput)
	}
	if err := ValidatePrice(price); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

// ValidatePrice exige precio >= 0, como máximo PriceDecimals decimales y PriceIntegerDigits dígitos enteros.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if !price.Equal(price.Round(PriceDecimals)) {
		return fmt.Errorf("%w: el precio admite como máximo %d decimales", domain.ErrInvalidInput, PriceDecimals)
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: el precio admite como máximo %d dígitos enteros", domain.ErrInvalidInput, PriceIntegerDigits)
	}
	return nil
}

// ParseStock interpreta una cantidad de stock ingresada por el usuario.
func ParseStock(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: el stock es obligatorio", domain.ErrInvalidInput)
	}
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: el stock debe ser un número entero", domain.ErrInvalidInput)
	}
	if err := ValidateStock(stock); err != nil {
		return 0, err
	}
	return stock, nil
}

// ValidateStock exige 0 <= stock <= MaxStock.
func ValidateStock(stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if stock > MaxStock {
		return fmt.Errorf("%w: el stock no puede superar %d", domain.ErrInvalidInput, MaxStock)
	}
	return nil
}
