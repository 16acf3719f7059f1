package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// MovementType indica el sentido de un movimiento de inventario.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementIn  MovementType = "in"  // entrada
	MovementOut MovementType = "out" // salida
)

// Valid indica si el tipo es uno de los conocidos.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// Sign devuelve +1 para entradas y -1 para salidas.
func (t MovementType) Sign() int {
	if t == MovementOut {
		return -1
	}
	return 1
}

// ParseMovementType acepta "in"/"out" y los nombres en español usados por la interfaz
// ("entrada", "entradas", "salida", "salidas"), sin distinguir mayúsculas.
func ParseMovementType(s string) (MovementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "entrada", "entradas":
		return MovementIn, nil
	case "out", "salida", "salidas":
		return MovementOut, nil
	}
	return "", fmt.Errorf("tipo de movimiento desconocido: %q", s)
}

// Valores de la columna movimientos.tipo.
const (
	columnIn  = "entrada"
	columnOut = "salida"
)

// Value guarda el tipo con los valores históricos de la tabla ("entrada"/"salida").
func (t MovementType) Value() (driver.Value, error) {
	switch t {
	case MovementIn:
		return columnIn, nil
	case MovementOut:
		return columnOut, nil
	}
	return nil, fmt.Errorf("tipo de movimiento inválido: %q", string(t))
}

// Scan lee el tipo desde la columna movimientos.tipo.
func (t *MovementType) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("tipo de movimiento: valor no soportado %T", src)
	}
	parsed, err := ParseMovementType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Movement es una entrada del libro de movimientos (solo se agrega, nunca se edita).
type Movement struct {
	ID        string       `db:"id"`
	ProductID string       `db:"producto_id"`
	Type      MovementType `db:"tipo"`
	Quantity  int          `db:"cantidad"` // siempre > 0; el signo lo da Type
	Timestamp time.Time    `db:"fecha"`
}

// Signed devuelve la cantidad con el signo del tipo.
func (m *Movement) Signed() int {
	return m.Type.Sign() * m.Quantity
}

// MovementView es un movimiento junto con el nombre del producto al que pertenece.
type MovementView struct {
	Movement
	ProductName string `db:"producto_nombre"`
}

// LedgerDiscrepancy describe un producto cuyo stock no coincide con su libro de movimientos.
type LedgerDiscrepancy struct {
	ProductID   string
	Code        string
	Name        string
	Stock       int
	LedgerTotal int
}
