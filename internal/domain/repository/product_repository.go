package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos por categoría cubren TODOS los descendientes de la categoría sin
// importar en qué subcategoría estén (una desactivación a nivel categoría debe
// alcanzar cada producto del subárbol).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, includeInactive bool) ([]*entity.Product, error)
	SetActive(ctx context.Context, id string, active bool) (int64, error)
	DeactivateByCategory(ctx context.Context, categoryID string) (int64, error)
	DeactivateBySubcategory(ctx context.Context, subcategoryID string) (int64, error)
	Delete(ctx context.Context, id string) error
	DeleteByCategory(ctx context.Context, categoryID string) (int64, error)
	DeleteBySubcategory(ctx context.Context, subcategoryID string) (int64, error)
}
