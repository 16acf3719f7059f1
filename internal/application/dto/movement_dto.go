package dto

import (
	"time"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
)

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Type        string    `json:"type"` // in | out
	Quantity    int       `json:"quantity"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewMovementResponse mapea el movimiento. m nil devuelve nil.
func NewMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Timestamp: m.Timestamp,
	}
}

// NewMovementList mapea los movimientos de un producto.
func NewMovementList(list []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *NewMovementResponse(m))
	}
	return out
}

// NewMovementViewList mapea movimientos con el nombre de su producto.
func NewMovementViewList(list []*entity.MovementView) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, v := range list {
		r := NewMovementResponse(&v.Movement)
		r.ProductName = v.ProductName
		out = append(out, *r)
	}
	return out
}

// LedgerAuditResponse resultado de auditar el libro contra el stock.
type LedgerAuditResponse struct {
	Consistent    bool                         `json:"consistent"`
	Discrepancies []LedgerDiscrepancyResponse `json:"discrepancies"`
}

// LedgerDiscrepancyResponse producto cuyo stock no coincide con su libro.
type LedgerDiscrepancyResponse struct {
	ProductID   string `json:"product_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Stock       int    `json:"stock"`
	LedgerTotal int    `json:"ledger_total"`
}

// NewLedgerAuditResponse mapea el resultado de la auditoría.
func NewLedgerAuditResponse(list []entity.LedgerDiscrepancy) LedgerAuditResponse {
	out := LedgerAuditResponse{
		Consistent:    len(list) == 0,
		Discrepancies: make([]LedgerDiscrepancyResponse, 0, len(list)),
	}
	for _, d := range list {
		out.Discrepancies = append(out.Discrepancies, LedgerDiscrepancyResponse{
			ProductID:   d.ProductID,
			Code:        d.Code,
			Name:        d.Name,
			Stock:       d.Stock,
			LedgerTotal: d.LedgerTotal,
		})
	}
	return out
}
