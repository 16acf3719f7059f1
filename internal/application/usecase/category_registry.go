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

// CategoryRegistry administra las categorías. Borrar una categoría desasocia sus productos.
type CategoryRegistry struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryRegistry construye el registro. Para escrituras atómicas pasar repos atados a la tx.
func NewCategoryRegistry(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryRegistry {
	return &CategoryRegistry{categories: categories, products: products}
}

// Create crea una categoría con nombre único.
func (r *CategoryRegistry) Create(ctx context.Context, name string) (*entity.Category, error) {
	name, err := inventory.RequireText("el nombre de la categoría", name)
	if err != nil {
		return nil, err
	}
	existing, err := r.categories.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateName, name)
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}
	category := &entity.Category{ID: id, Name: name}
	if err := r.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Rename cambia el nombre. Devuelve false sin escribir si el nombre no cambia.
func (r *CategoryRegistry) Rename(ctx context.Context, id, newName string) (bool, error) {
	newName, err := inventory.RequireText("el nombre de la categoría", newName)
	if err != nil {
		return false, err
	}
	current, err := r.get(ctx, id)
	if err != nil {
		return false, err
	}
	if current.Name == newName {
		return false, nil
	}
	other, err := r.categories.GetByName(ctx, newName)
	if err != nil {
		return false, err
	}
	if other != nil {
		return false, fmt.Errorf("%w: %q", domain.ErrDuplicateName, newName)
	}
	if err := r.categories.Rename(ctx, id, newName); err != nil {
		return false, err
	}
	return true, nil
}

// Delete desasocia los productos de la categoría y la elimina. Devuelve cuántos productos quedaron sin categoría.
func (r *CategoryRegistry) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := r.get(ctx, id); err != nil {
		return 0, err
	}
	detached, err := r.products.DetachCategory(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := r.categories.Delete(ctx, id); err != nil {
		return 0, err
	}
	return detached, nil
}

// List devuelve las categorías ordenadas por nombre sin distinguir mayúsculas.
func (r *CategoryRegistry) List(ctx context.Context) ([]*entity.Category, error) {
	list, err := r.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	inventory.SortCategories(list)
	return list, nil
}

// Get devuelve la categoría o domain.ErrNotFound.
func (r *CategoryRegistry) Get(ctx context.Context, id string) (*entity.Category, error) {
	return r.get(ctx, id)
}

// Resolve traduce un nombre de categoría a su id. Un nombre vacío significa "sin categoría" (nil).
func (r *CategoryRegistry) Resolve(ctx context.Context, name string) (*string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	category, err := r.categories.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %q no existe", domain.ErrInvalidCategory, name)
	}
	return &category.ID, nil
}

// Exists indica si la categoría id existe.
func (r *CategoryRegistry) Exists(ctx context.Context, id string) (bool, error) {
	category, err := r.categories.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return category != nil, nil
}

func (r *CategoryRegistry) get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := r.categories.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, id)
	}
	return category, nil
}
