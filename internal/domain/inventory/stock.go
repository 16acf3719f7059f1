package inventory

import "github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"

// StockChange traduce el paso de previous a next en el movimiento que lo justifica.
// ok es false cuando no hay cambio (no se registra movimiento).
func StockChange(previous, next int) (movementType entity.MovementType, quantity int, ok bool) {
	return MovementForDelta(next - previous)
}

// MovementForDelta devuelve el tipo y la cantidad (positiva) del movimiento para un delta de stock.
func MovementForDelta(delta int) (movementType entity.MovementType, quantity int, ok bool) {
	switch {
	case delta > 0:
		return entity.MovementIn, delta, true
	case delta < 0:
		return entity.MovementOut, -delta, true
	}
	return "", 0, false
}

// LedgerNet suma con signo las cantidades de los movimientos (entradas menos salidas).
// Para todo producto existente debe coincidir con su stock.
func LedgerNet(movements []*entity.Movement) int {
	total := 0
	for _, m := range movements {
		total += m.Signed()
	}
	return total
}

// Discrepancies compara el stock de cada producto con el neto de su libro.
// Los productos sin movimientos tienen neto 0.
func Discrepancies(products []*entity.ProductView, net map[string]int) []entity.LedgerDiscrepancy {
	var out []entity.LedgerDiscrepancy
	for _, p := range products {
		total := net[p.ID]
		if total == p.Stock {
			continue
		}
		out = append(out, entity.LedgerDiscrepancy{
			ProductID:   p.ID,
			Code:        p.Code,
			Name:        p.Name,
			Stock:       p.Stock,
			LedgerTotal: total,
		})
	}
	return out
}
