package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
)

// SnapshotRunner ejecuta fn con repositorios que ven un único estado confirmado del almacén.
type SnapshotRunner interface {
	Run(ctx context.Context, fn func(repos repository.Set) error) error
}

// QueryFacade lecturas para la presentación y los reportes. Nunca modifica estado.
type QueryFacade struct {
	repos     repository.Set
	snapshots SnapshotRunner
}

// NewQueryFacade construye la fachada de consultas. snapshots puede ser nil;
// en ese caso AuditLedger lee fuera de transacción.
func NewQueryFacade(repos repository.Set, snapshots SnapshotRunner) *QueryFacade {
	return &QueryFacade{repos: repos, snapshots: snapshots}
}

// ListProductsWithCategory devuelve todos los productos con su categoría, ordenados por nombre.
func (q *QueryFacade) ListProductsWithCategory(ctx context.Context) ([]*entity.ProductView, error) {
	list, err := q.repos.Products.ListWithCategory(ctx)
	if err != nil {
		return nil, err
	}
	inventory.SortProducts(list)
	return list, nil
}

// ListCategories devuelve las categorías ordenadas por nombre.
func (q *QueryFacade) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return NewCategoryRegistry(q.repos.Categories, q.repos.Products).List(ctx)
}

// SearchProducts filtra por código, nombre o categoría. Un término vacío devuelve todo el catálogo.
func (q *QueryFacade) SearchProducts(ctx context.Context, term string) ([]*entity.ProductView, error) {
	return NewProductCatalog(q.repos.Products, nil).Search(ctx, term)
}

// ProductByID devuelve la vista del producto o domain.ErrNotFound.
func (q *QueryFacade) ProductByID(ctx context.Context, id string) (*entity.ProductView, error) {
	id = strings.TrimSpace(id)
	view, err := q.repos.Products.GetViewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return view, nil
}

// ProductByCode devuelve la vista del producto con ese código o domain.ErrNotFound.
func (q *QueryFacade) ProductByCode(ctx context.Context, code string) (*entity.ProductView, error) {
	code = strings.TrimSpace(code)
	view, err := q.repos.Products.GetViewByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("%w: producto con código %q", domain.ErrNotFound, code)
	}
	return view, nil
}

// MovementsForProduct devuelve el libro de un producto en orden cronológico.
func (q *QueryFacade) MovementsForProduct(ctx context.Context, productID string) ([]*entity.Movement, error) {
	if _, err := NewProductCatalog(q.repos.Products, nil).LookupByID(ctx, productID); err != nil {
		return nil, err
	}
	return NewMovementLedger(q.repos.Movements, q.repos.Products).ListForProduct(ctx, strings.TrimSpace(productID))
}

// ListMovementsWithProductName devuelve los movimientos con el nombre del producto, del más reciente al más antiguo.
func (q *QueryFacade) ListMovementsWithProductName(ctx context.Context, typeFilter *entity.MovementType) ([]*entity.MovementView, error) {
	return NewMovementLedger(q.repos.Movements, q.repos.Products).ListAll(ctx, typeFilter)
}

// AuditLedger recalcula el neto del libro de cada producto y devuelve los que no coinciden con su stock.
// Una lista vacía significa que el inventario es consistente.
func (q *QueryFacade) AuditLedger(ctx context.Context) ([]entity.LedgerDiscrepancy, error) {
	var out []entity.LedgerDiscrepancy
	audit := func(repos repository.Set) error {
		products, err := repos.Products.ListWithCategory(ctx)
		if err != nil {
			return err
		}
		net, err := repos.Movements.NetByProduct(ctx)
		if err != nil {
			return err
		}
		out = inventory.Discrepancies(products, net)
		return nil
	}
	var err error
	if q.snapshots == nil {
		err = audit(q.repos)
	} else {
		err = q.snapshots.Run(ctx, audit)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
