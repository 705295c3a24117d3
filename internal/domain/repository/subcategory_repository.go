package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
// Las operaciones por filtro (Deactivate/DeleteByCategory) son batch: el conteo
// de filas afectadas se reporta junto con la escritura, no cargando documentos
// uno a uno.
type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *entity.Subcategory) error
	GetByID(ctx context.Context, id string) (*entity.Subcategory, error)
	GetByName(ctx context.Context, name string) (*entity.Subcategory, error)
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	List(ctx context.Context, includeInactive bool) ([]*entity.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error)
	SetActive(ctx context.Context, id string, active bool) (int64, error)
	// DeactivateByCategory marca active=false en todas las subcategorías de la
	// categoría; solo cuenta las que estaban activas.
	DeactivateByCategory(ctx context.Context, categoryID string) (int64, error)
	Delete(ctx context.Context, id string) error
	DeleteByCategory(ctx context.Context, categoryID string) (int64, error)
}
