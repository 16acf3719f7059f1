package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository (usable con DB o tx).
type MovementRepo struct {
	q sqlx.ExtContext
}

// NewMovementRepository construye el adaptador de persistencia del libro de movimientos.
func NewMovementRepository(q sqlx.ExtContext) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create agrega un movimiento al libro.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := r.q.Rebind(`
		INSERT INTO movimientos (id, producto_id, tipo, cantidad, fecha)
		VALUES (?, ?, ?, ?, ?)`)
	if _, err := r.q.ExecContext(ctx, query, m.ID, m.ProductID, m.Type, m.Quantity, m.Timestamp); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto %s", domain.ErrDanglingReference, m.ProductID)
		}
		return storageErr("insert movement", err)
	}
	return nil
}

// ListByProduct devuelve los movimientos del producto, del más antiguo al más reciente.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error) {
	query := r.q.Rebind(`
		SELECT id, producto_id, tipo, cantidad, fecha
		FROM movimientos
		WHERE producto_id = ?
		ORDER BY fecha, id`)
	var list []*entity.Movement
	if err := sqlx.SelectContext(ctx, r.q, &list, query, productID); err != nil {
		return nil, storageErr("list movements", err)
	}
	return list, nil
}

// ListWithProduct devuelve los movimientos con el nombre del producto, del más reciente al más antiguo.
func (r *MovementRepo) ListWithProduct(ctx context.Context, typeFilter *entity.MovementType) ([]*entity.MovementView, error) {
	query := `
		SELECT m.id, m.producto_id, m.tipo, m.cantidad, m.fecha, p.nombre AS producto_nombre
		FROM movimientos m
		JOIN productos p ON p.id = m.producto_id`
	var args []any
	if typeFilter != nil {
		query += ` WHERE m.tipo = ?`
		args = append(args, *typeFilter)
	}
	query += ` ORDER BY m.fecha DESC, m.id DESC`

	var list []*entity.MovementView
	if err := sqlx.SelectContext(ctx, r.q, &list, r.q.Rebind(query), args...); err != nil {
		return nil, storageErr("list movements with product", err)
	}
	return list, nil
}

// DeleteByProduct borra todos los movimientos del producto y devuelve cuántos eliminó.
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM movimientos WHERE producto_id = ?`), productID)
	if err != nil {
		return 0, storageErr("delete movements", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("delete movements", err)
	}
	return n, nil
}

type netRow struct {
	ProductID string `db:"producto_id"`
	Net       int64  `db:"neto"`
}

// NetByProduct devuelve, por producto, entradas menos salidas.
func (r *MovementRepo) NetByProduct(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT producto_id,
		       SUM(CASE WHEN tipo = 'entrada' THEN cantidad ELSE -cantidad END) AS neto
		FROM movimientos
		GROUP BY producto_id`
	var rows []netRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query); err != nil {
		return nil, storageErr("net by product", err)
	}
	net := make(map[string]int, len(rows))
	for _, row := range rows {
		net[row.ProductID] = int(row.Net)
	}
	return net, nil
}
