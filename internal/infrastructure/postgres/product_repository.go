package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, category_id, subcategory_id, name, slug, description, price, stock, created_by, images, active, created_at, updated_at`

// Create persiste un nuevo producto. created_by puede ser NULL.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, subcategory_id, name, slug, description, price, stock, created_by, images, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		product.ID, product.CategoryID, product.SubcategoryID, product.Name, product.Slug,
		product.Description, product.Price, product.Stock, product.CreatedBy, product.Images,
		product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.queryOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByName obtiene un producto por nombre exacto.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.queryOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

func (r *ProductRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	var createdBy *string
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.CategoryID, &p.SubcategoryID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.Stock, &createdBy, &p.Images, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, subcategory_id = $3, name = $4, slug = $5, description = $6,
			price = $7, stock = $8, images = $9, active = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		product.ID, product.CategoryID, product.SubcategoryID, product.Name, product.Slug,
		product.Description, product.Price, product.Stock, product.Images, product.Active, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos ordenados por fecha de creación descendente.
func (r *ProductRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if !includeInactive {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var createdBy *string
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.SubcategoryID, &p.Name, &p.Slug, &p.Description,
			&p.Price, &p.Stock, &createdBy, &p.Images, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if createdBy != nil {
			p.CreatedBy = *createdBy
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SetActive cambia el flag active; solo cuenta la fila si realmente cambió.
func (r *ProductRepo) SetActive(ctx context.Context, id string, active bool) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET active = $2, updated_at = now() WHERE id = $1 AND active <> $2`,
		id, active,
	)
	if err != nil {
		return 0, fmt.Errorf("set product active: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeactivateByCategory desactiva en batch TODOS los productos de la
// categoría, sin filtrar por subcategoría (una desactivación a nivel
// categoría alcanza cada producto del subárbol).
func (r *ProductRepo) DeactivateByCategory(ctx context.Context, categoryID string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET active = false, updated_at = now() WHERE category_id = $1 AND active = true`,
		categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate products by category: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeactivateBySubcategory desactiva en batch los productos de la subcategoría.
func (r *ProductRepo) DeactivateBySubcategory(ctx context.Context, subcategoryID string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET active = false, updated_at = now() WHERE subcategory_id = $1 AND active = true`,
		subcategoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate products by subcategory: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DeleteByCategory elimina en batch todos los productos de la categoría.
func (r *ProductRepo) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete products by category: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteBySubcategory elimina en batch los productos de la subcategoría.
func (r *ProductRepo) DeleteBySubcategory(ctx context.Context, subcategoryID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE subcategory_id = $1`, subcategoryID)
	if err != nil {
		return 0, fmt.Errorf("delete products by subcategory: %w", err)
	}
	return tag.RowsAffected(), nil
}
