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

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
// Las operaciones de cascada son updates/deletes por filtro: el conteo sale
// de RowsAffected de la misma sentencia, no de cargar filas una a una.
type SubcategoryRepo struct {
	pool *pgxpool.Pool
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoryRepository(pool *pgxpool.Pool) *SubcategoryRepo {
	return &SubcategoryRepo{pool: pool}
}

const subcategoryColumns = `id, category_id, name, slug, description, active, created_at, updated_at`

// Create persiste una nueva subcategoría.
func (r *SubcategoryRepo) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, category_id, name, slug, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		subcategory.ID, subcategory.CategoryID, subcategory.Name, subcategory.Slug,
		subcategory.Description, subcategory.Active, subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID.
func (r *SubcategoryRepo) GetByID(ctx context.Context, id string) (*entity.Subcategory, error) {
	return r.queryOne(ctx, `SELECT `+subcategoryColumns+` FROM subcategories WHERE id = $1`, id)
}

// GetByName obtiene una subcategoría por nombre exacto.
func (r *SubcategoryRepo) GetByName(ctx context.Context, name string) (*entity.Subcategory, error) {
	return r.queryOne(ctx, `SELECT `+subcategoryColumns+` FROM subcategories WHERE name = $1`, name)
}

func (r *SubcategoryRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

// Update actualiza una subcategoría.
func (r *SubcategoryRepo) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories SET category_id = $2, name = $3, slug = $4, description = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		subcategory.ID, subcategory.CategoryID, subcategory.Name, subcategory.Slug,
		subcategory.Description, subcategory.Active, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// List lista subcategorías ordenadas por fecha de creación descendente.
func (r *SubcategoryRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories`
	if !includeInactive {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

// ListByCategory lista las subcategorías de una categoría.
func (r *SubcategoryRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE category_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, categoryID)
}

func (r *SubcategoryRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Subcategory, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SetActive cambia el flag active; solo cuenta la fila si realmente cambió.
func (r *SubcategoryRepo) SetActive(ctx context.Context, id string, active bool) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE subcategories SET active = $2, updated_at = now() WHERE id = $1 AND active <> $2`,
		id, active,
	)
	if err != nil {
		return 0, fmt.Errorf("set subcategory active: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeactivateByCategory desactiva en batch las subcategorías de la categoría.
// El filtro active = true hace el conteo idempotente: una segunda pasada
// reporta 0.
func (r *SubcategoryRepo) DeactivateByCategory(ctx context.Context, categoryID string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE subcategories SET active = false, updated_at = now() WHERE category_id = $1 AND active = true`,
		categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate subcategories by category: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina una subcategoría por ID.
func (r *SubcategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

// DeleteByCategory elimina en batch las subcategorías de la categoría.
func (r *SubcategoryRepo) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subcategories WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete subcategories by category: %w", err)
	}
	return tag.RowsAffected(), nil
}
