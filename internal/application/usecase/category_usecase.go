package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jhoicas/catalogo-api/internal/application/cascade"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Las transiciones de
// ciclo de vida (desactivar, reactivar, eliminar) delegan en el motor de
// cascada; este use case solo maneja campos simples.
type CategoryUseCase struct {
	repo   repository.CategoryRepository
	engine *cascade.Engine
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, engine *cascade.Engine) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, engine: engine}
}

// Create crea una categoría. La unicidad del nombre se verifica pre-write
// (el constraint UNIQUE del store es solo respaldo).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByName(ctx, name); existing != nil {
		return nil, domain.ErrDuplicateName
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List lista categorías; por defecto solo activas, includeInactive=true las
// incluye todas.
func (uc *CategoryUseCase) List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update actualiza campos enviados. Active=false dispara la cascada de
// desactivación; Active=true reactiva solo la raíz.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Active != nil {
		var result *cascade.CategoryResult
		var err error
		if *in.Active {
			result, err = uc.engine.ReactivateCategory(ctx, id)
		} else {
			result, err = uc.engine.DeactivateCategory(ctx, id)
		}
		if err != nil {
			return nil, err
		}
		// Los demás campos se aplican sobre el estado resultante.
		if in.Name == nil && in.Description == nil {
			return toCategoryResponse(result.Category), nil
		}
	}

	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != category.Name {
			if existing, _ := uc.repo.GetByName(ctx, name); existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicateName
			}
			category.Name = name
			category.Slug = slug.Make(name)
		}
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Description = description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Deactivate desactiva la categoría en cascada (soft delete) y reporta los
// conteos por nivel.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.CategoryDeactivateResponse, error) {
	result, err := uc.engine.DeactivateCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryDeactivateResponse{
		Category:                 *toCategoryResponse(result.Category),
		SubcategoriesDeactivated: result.SubcategoriesAffected,
		ProductsDeactivated:      result.ProductsAffected,
	}, nil
}

// HardDelete elimina permanentemente la categoría y su subárbol.
func (uc *CategoryUseCase) HardDelete(ctx context.Context, id string) (*dto.CategoryHardDeleteResponse, error) {
	result, err := uc.engine.HardDeleteCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryHardDeleteResponse{
		Category:             *toCategoryResponse(result.Category),
		SubcategoriesDeleted: result.SubcategoriesAffected,
		ProductsDeleted:      result.ProductsAffected,
	}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
