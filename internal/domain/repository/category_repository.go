package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, includeInactive bool) ([]*entity.Category, error)
	// SetActive cambia el flag active de la categoría raíz. Devuelve cuántas
	// filas cambiaron realmente (0 si ya estaba en ese estado).
	SetActive(ctx context.Context, id string, active bool) (int64, error)
	Delete(ctx context.Context, id string) error
}
