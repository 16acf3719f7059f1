package usecase

import (
	"context"
	"fmt"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
)

// MovementLedger es el libro de movimientos: solo agrega registros, nunca los edita.
type MovementLedger struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
}

// NewMovementLedger construye el libro.
func NewMovementLedger(movements repository.MovementRepository, products repository.ProductRepository) *MovementLedger {
	return &MovementLedger{movements: movements, products: products}
}

// Record agrega un movimiento para un producto existente.
func (l *MovementLedger) Record(ctx context.Context, productID string, movementType entity.MovementType, quantity int) (*entity.Movement, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !movementType.Valid() {
		return nil, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, string(movementType))
	}
	product, err := l.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrDanglingReference, productID)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	movement := &entity.Movement{
		ID:        id,
		ProductID: productID,
		Type:      movementType,
		Quantity:  quantity,
		Timestamp: now(),
	}
	if err := l.movements.Create(ctx, movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// ListForProduct devuelve los movimientos del producto, del más antiguo al más reciente.
func (l *MovementLedger) ListForProduct(ctx context.Context, productID string) ([]*entity.Movement, error) {
	return l.movements.ListByProduct(ctx, productID)
}

// ListAll devuelve todos los movimientos, del más reciente al más antiguo. typeFilter nil = todos.
func (l *MovementLedger) ListAll(ctx context.Context, typeFilter *entity.MovementType) ([]*entity.MovementView, error) {
	if typeFilter != nil && !typeFilter.Valid() {
		return nil, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, string(*typeFilter))
	}
	return l.movements.ListWithProduct(ctx, typeFilter)
}

// DeleteForProduct borra todos los movimientos del producto. Solo se usa al eliminar el producto.
func (l *MovementLedger) DeleteForProduct(ctx context.Context, productID string) (int64, error) {
	return l.movements.DeleteByProduct(ctx, productID)
}
