package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository (usable con DB o tx).
type CategoryRepo struct {
	q sqlx.ExtContext
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q sqlx.ExtContext) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := r.q.Rebind(`INSERT INTO categorias (id, nombre) VALUES (?, ?)`)
	if _, err := r.q.ExecContext(ctx, query, category.ID, category.Name); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateName, category.Name)
		}
		return storageErr("insert category", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.getOne(ctx, "get category", `SELECT id, nombre FROM categorias WHERE id = ?`, id)
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, "get category by name", `SELECT id, nombre FROM categorias WHERE nombre = ?`, name)
}

func (r *CategoryRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Category, error) {
	var c entity.Category
	if err := sqlx.GetContext(ctx, r.q, &c, r.q.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &c, nil
}

// Rename cambia el nombre de la categoría id.
func (r *CategoryRepo) Rename(ctx context.Context, id, name string) error {
	query := r.q.Rebind(`UPDATE categorias SET nombre = ? WHERE id = ?`)
	res, err := r.q.ExecContext(ctx, query, name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateName, name)
		}
		return storageErr("rename category", err)
	}
	return requireAffected(res, "rename category", "categoría "+id)
}

// Delete elimina la categoría. Los productos deben haberse desasociado antes (ProductRepo.DetachCategory).
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM categorias WHERE id = ?`), id)
	if err != nil {
		return storageErr("delete category", err)
	}
	return requireAffected(res, "delete category", "categoría "+id)
}

// List devuelve todas las categorías ordenadas por nombre (orden binario del motor).
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var list []*entity.Category
	if err := sqlx.SelectContext(ctx, r.q, &list, `SELECT id, nombre FROM categorias ORDER BY nombre`); err != nil {
		return nil, storageErr("list categories", err)
	}
	return list, nil
}

// requireAffected convierte un UPDATE/DELETE sin filas afectadas en domain.ErrNotFound.
func requireAffected(res sql.Result, op, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
	}
	return nil
}
