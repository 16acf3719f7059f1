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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, codigo, nombre, precio, stock, categoria_id, fecha_creacion`

const productViewSelect = `
		SELECT p.id, p.codigo, p.nombre, p.precio, p.stock, p.categoria_id, p.fecha_creacion,
		       c.nombre AS categoria_nombre
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id`

// ProductRepo implementación del puerto ProductRepository (usable con DB o tx).
type ProductRepo struct {
	q       sqlx.ExtContext
	dialect Dialect
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q sqlx.ExtContext, dialect Dialect) *ProductRepo {
	return &ProductRepo{q: q, dialect: dialect}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := r.q.Rebind(`
		INSERT INTO productos (id, codigo, nombre, precio, stock, categoria_id, fecha_creacion)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.q.ExecContext(ctx, query,
		p.ID, p.Code, p.Name, p.Price, p.Stock, p.CategoryID, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateCode, p.Code)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la categoría ya no existe", domain.ErrInvalidCategory)
		}
		return storageErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "get product", `SELECT `+productColumns+` FROM productos WHERE id = ?`, id)
}

// GetByCode obtiene un producto por su código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.getOne(ctx, "get product by code", `SELECT `+productColumns+` FROM productos WHERE codigo = ?`, code)
}

// GetForUpdate obtiene el producto bloqueando la fila hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := r.dialect.forUpdate(`SELECT ` + productColumns + ` FROM productos WHERE id = ?`)
	return r.getOne(ctx, "get product for update", query, id)
}

func (r *ProductRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	if err := sqlx.GetContext(ctx, r.q, &p, r.q.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &p, nil
}

// Update guarda nombre, precio, stock y categoría. El código y la fecha de creación no se modifican.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := r.q.Rebind(`
		UPDATE productos SET nombre = ?, precio = ?, stock = ?, categoria_id = ?
		WHERE id = ?`)
	res, err := r.q.ExecContext(ctx, query, p.Name, p.Price, p.Stock, p.CategoryID, p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la categoría ya no existe", domain.ErrInvalidCategory)
		}
		return storageErr("update product", err)
	}
	return requireAffected(res, "update product", "producto "+p.ID)
}

// Delete elimina el producto. Sus movimientos deben haberse borrado antes en la misma transacción.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM productos WHERE id = ?`), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el producto %s aún tiene movimientos", domain.ErrDanglingReference, id)
		}
		return storageErr("delete product", err)
	}
	return requireAffected(res, "delete product", "producto "+id)
}

// DetachCategory deja sin categoría a todos los productos de categoryID.
func (r *ProductRepo) DetachCategory(ctx context.Context, categoryID string) (int64, error) {
	query := r.q.Rebind(`UPDATE productos SET categoria_id = NULL WHERE categoria_id = ?`)
	res, err := r.q.ExecContext(ctx, query, categoryID)
	if err != nil {
		return 0, storageErr("detach category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("detach category", err)
	}
	return n, nil
}

// GetViewByID obtiene un producto con el nombre de su categoría.
func (r *ProductRepo) GetViewByID(ctx context.Context, id string) (*entity.ProductView, error) {
	return r.getView(ctx, "get product view", productViewSelect+` WHERE p.id = ?`, id)
}

// GetViewByCode obtiene por código un producto con el nombre de su categoría.
func (r *ProductRepo) GetViewByCode(ctx context.Context, code string) (*entity.ProductView, error) {
	return r.getView(ctx, "get product view by code", productViewSelect+` WHERE p.codigo = ?`, code)
}

func (r *ProductRepo) getView(ctx context.Context, op, query string, arg any) (*entity.ProductView, error) {
	var v entity.ProductView
	if err := sqlx.GetContext(ctx, r.q, &v, r.q.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &v, nil
}

// ListWithCategory devuelve todos los productos con el nombre de su categoría.
func (r *ProductRepo) ListWithCategory(ctx context.Context) ([]*entity.ProductView, error) {
	query := productViewSelect + `
		ORDER BY p.nombre, p.codigo`
	var list []*entity.ProductView
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, storageErr("list products", err)
	}
	return list, nil
}
