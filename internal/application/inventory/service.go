package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/usecase"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/logger"
)

// Service es el único punto de escritura del inventario. Cada operación corre en una transacción:
// catálogo y libro de movimientos se confirman juntos o no se confirma nada.
type Service struct {
	txRunner TxRunner
	log      *logger.Logger

	mu        sync.RWMutex
	listeners []CatalogListener
}

// NewService construye el servicio de inventario.
func NewService(txRunner TxRunner, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{txRunner: txRunner, log: log}
}

// components arma el catálogo, el registro y el libro sobre los repos de la transacción.
type components struct {
	categories *usecase.CategoryRegistry
	catalog    *usecase.ProductCatalog
	ledger     *usecase.MovementLedger
}

func newComponents(repos repository.Set) components {
	categories := usecase.NewCategoryRegistry(repos.Categories, repos.Products)
	return components{
		categories: categories,
		catalog:    usecase.NewProductCatalog(repos.Products, categories),
		ledger:     usecase.NewMovementLedger(repos.Movements, repos.Products),
	}
}

func (s *Service) run(ctx context.Context, fn func(c components) error) error {
	return s.txRunner.Run(ctx, func(repos repository.Set) error {
		return fn(newComponents(repos))
	})
}

// AddProduct crea el producto y, si el stock inicial es mayor que cero, registra la entrada correspondiente.
func (s *Service) AddProduct(ctx context.Context, req AddProductRequest) (*AddResult, error) {
	fields, err := parseFields(req.Code, req.Name, req.Price, req.Stock)
	if err != nil {
		return nil, s.failed("add_product", err)
	}

	var result AddResult
	err = s.run(ctx, func(c components) error {
		categoryID, err := c.categories.Resolve(ctx, req.CategoryName)
		if err != nil {
			return err
		}
		product, err := c.catalog.Insert(ctx, usecase.NewProduct{
			Code:       fields.code,
			Name:       fields.name,
			Price:      fields.price,
			Stock:      fields.stock,
			CategoryID: categoryID,
		})
		if err != nil {
			return err
		}
		result.Product = product
		if fields.stock > 0 {
			result.Movement, err = c.ledger.Record(ctx, product.ID, entity.MovementIn, fields.stock)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.failed("add_product", err)
	}

	s.log.Info().
		Str("op", "add_product").
		Str("producto_id", result.Product.ID).
		Str("codigo", result.Product.Code).
		Int("stock", result.Product.Stock).
		Msg("producto creado")
	return &result, nil
}

// EditProduct guarda los nuevos valores y registra como máximo un movimiento con el delta de stock.
// El delta se calcula con el stock leído dentro de la transacción, antes de cualquier escritura.
func (s *Service) EditProduct(ctx context.Context, req EditProductRequest) (*EditResult, error) {
	fields, err := parseFields(req.Code, req.Name, req.Price, req.Stock)
	if err != nil {
		return nil, s.failed("edit_product", err)
	}
	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		return nil, s.failed("edit_product", fmt.Errorf("%w: el producto es obligatorio", domain.ErrInvalidInput))
	}

	var result EditResult
	err = s.run(ctx, func(c components) error {
		categoryID, err := c.categories.Resolve(ctx, req.CategoryName)
		if err != nil {
			return err
		}
		current, err := c.catalog.LookupByID(ctx, productID)
		if err != nil {
			return err
		}
		if current.Code != fields.code {
			return fmt.Errorf("%w: el código %q no se puede cambiar", domain.ErrInvalidInput, current.Code)
		}
		product, delta, err := c.catalog.Update(ctx, usecase.ProductChanges{
			ID:         productID,
			Name:       fields.name,
			Price:      fields.price,
			Stock:      fields.stock,
			CategoryID: categoryID,
		})
		if err != nil {
			return err
		}
		result.Product = product
		movementType, quantity, changed := inventory.MovementForDelta(delta)
		if !changed {
			return nil
		}
		result.Movement, err = c.ledger.Record(ctx, productID, movementType, quantity)
		return err
	})
	if err != nil {
		return nil, s.failed("edit_product", err)
	}

	ev := s.log.Info().
		Str("op", "edit_product").
		Str("producto_id", productID).
		Int("stock", result.Product.Stock)
	if result.Movement != nil {
		ev = ev.Str("movimiento", string(result.Movement.Type)).Int("cantidad", result.Movement.Quantity)
	}
	ev.Msg("producto actualizado")
	return &result, nil
}

// DeleteProduct borra los movimientos del producto y luego el producto.
func (s *Service) DeleteProduct(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	var removed int64
	err := s.run(ctx, func(c components) error {
		if _, err := c.catalog.LookupByID(ctx, productID); err != nil {
			return err
		}
		var err error
		if removed, err = c.ledger.DeleteForProduct(ctx, productID); err != nil {
			return err
		}
		return c.catalog.Remove(ctx, productID)
	})
	if err != nil {
		return s.failed("delete_product", err)
	}
	s.log.Info().
		Str("op", "delete_product").
		Str("producto_id", productID).
		Int64("movimientos", removed).
		Msg("producto eliminado")
	return nil
}

// AddCategory crea una categoría.
func (s *Service) AddCategory(ctx context.Context, name string) (*entity.Category, error) {
	var category *entity.Category
	err := s.run(ctx, func(c components) error {
		var err error
		category, err = c.categories.Create(ctx, name)
		return err
	})
	if err != nil {
		return nil, s.failed("add_category", err)
	}
	s.log.Info().Str("op", "add_category").Str("categoria_id", category.ID).Str("nombre", category.Name).Msg("categoría creada")
	return category, nil
}

// RenameCategory cambia el nombre de la categoría. Si el nombre no cambia no escribe ni notifica.
func (s *Service) RenameCategory(ctx context.Context, id, newName string) (*entity.Category, error) {
	var (
		category *entity.Category
		changed  bool
	)
	err := s.run(ctx, func(c components) error {
		var err error
		if changed, err = c.categories.Rename(ctx, id, newName); err != nil {
			return err
		}
		category, err = c.categories.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.failed("rename_category", err)
	}
	if changed {
		s.log.Info().Str("op", "rename_category").Str("categoria_id", category.ID).Str("nombre", category.Name).Msg("categoría renombrada")
		s.notify(CatalogChange{Kind: CategoryRenamed, CategoryID: category.ID})
	}
	return category, nil
}

// DeleteCategory elimina la categoría dejando sus productos sin categoría. Devuelve cuántos productos se desasociaron.
func (s *Service) DeleteCategory(ctx context.Context, id string) (int64, error) {
	var detached int64
	err := s.run(ctx, func(c components) error {
		var err error
		detached, err = c.categories.Delete(ctx, id)
		return err
	})
	if err != nil {
		return 0, s.failed("delete_category", err)
	}
	s.log.Info().Str("op", "delete_category").Str("categoria_id", id).Int64("desasociados", detached).Msg("categoría eliminada")
	s.notify(CatalogChange{Kind: CategoryDeleted, CategoryID: id, DetachedProducts: detached})
	return detached, nil
}

// OnCatalogChanged registra un listener que se invoca después de cada cambio confirmado de categorías.
func (s *Service) OnCatalogChanged(listener CatalogListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *Service) notify(change CatalogChange) {
	s.mu.RLock()
	listeners := append([]CatalogListener(nil), s.listeners...)
	s.mu.RUnlock()
	for _, l := range listeners {
		l(change)
	}
}

// failed registra la falla con su tipo y devuelve el error sin modificarlo.
func (s *Service) failed(op string, err error) error {
	s.log.Warn().Str("op", op).Str("tipo", errorKind(err)).Err(err).Msg("operación de inventario rechazada")
	return err
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, domain.ErrDuplicateCode):
		return "duplicate_code"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCategory):
		return "invalid_category"
	case errors.Is(err, domain.ErrDanglingReference):
		return "dangling_reference"
	case errors.Is(err, domain.ErrStorage):
		return "storage"
	}
	return "unknown"
}
