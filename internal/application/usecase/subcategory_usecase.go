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

// SubcategoryUseCase casos de uso CRUD para subcategorías. La categoría
// padre debe existir al crear o al cambiar la referencia (integridad
// verificada al escribir, nunca delegada al store).
type SubcategoryUseCase struct {
	repo       repository.SubcategoryRepository
	categories repository.CategoryRepository
	engine     *cascade.Engine
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(
	repo repository.SubcategoryRepository,
	categories repository.CategoryRepository,
	engine *cascade.Engine,
) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, categories: categories, engine: engine}
}

// Create crea una subcategoría validando que la categoría padre exista y
// que el nombre no esté tomado.
func (uc *SubcategoryUseCase) Create(ctx context.Context, in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	parent, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound // la categoría no existe
	}
	if existing, _ := uc.repo.GetByName(ctx, name); existing != nil {
		return nil, domain.ErrDuplicateName
	}
	now := time.Now()
	subcategory := &entity.Subcategory{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, subcategory); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// GetByID obtiene una subcategoría por ID.
func (uc *SubcategoryUseCase) GetByID(ctx context.Context, id string) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	return toSubcategoryResponse(subcategory), nil
}

// List lista subcategorías; por defecto solo activas.
func (uc *SubcategoryUseCase) List(ctx context.Context, includeInactive bool) ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

// ListByCategory lista las subcategorías de una categoría. Si la categoría
// no existe devuelve ErrNotFound en lugar de una lista vacía ambigua.
func (uc *SubcategoryUseCase) ListByCategory(ctx context.Context, categoryID string) ([]dto.SubcategoryResponse, error) {
	parent, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

// Update actualiza campos enviados; si cambia la categoría padre se revalida
// que exista. Active delega en el motor de cascada.
func (uc *SubcategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if in.Active != nil {
		var result *cascade.SubcategoryResult
		var err error
		if *in.Active {
			result, err = uc.engine.ReactivateSubcategory(ctx, id)
		} else {
			result, err = uc.engine.DeactivateSubcategory(ctx, id)
		}
		if err != nil {
			return nil, err
		}
		if in.Name == nil && in.Description == nil && in.CategoryID == nil {
			return toSubcategoryResponse(result.Subcategory), nil
		}
	}

	subcategory, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil && *in.CategoryID != subcategory.CategoryID {
		parent, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrReferentialIntegrity
		}
		subcategory.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != subcategory.Name {
			if existing, _ := uc.repo.GetByName(ctx, name); existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicateName
			}
			subcategory.Name = name
			subcategory.Slug = slug.Make(name)
		}
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrInvalidInput
		}
		subcategory.Description = description
	}
	subcategory.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, subcategory); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// Deactivate desactiva la subcategoría y sus productos (soft delete).
func (uc *SubcategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.SubcategoryDeactivateResponse, error) {
	result, err := uc.engine.DeactivateSubcategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubcategoryDeactivateResponse{
		Subcategory:         *toSubcategoryResponse(result.Subcategory),
		ProductsDeactivated: result.ProductsAffected,
	}, nil
}

// HardDelete elimina permanentemente la subcategoría y sus productos.
func (uc *SubcategoryUseCase) HardDelete(ctx context.Context, id string) (*dto.SubcategoryHardDeleteResponse, error) {
	result, err := uc.engine.HardDeleteSubcategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubcategoryHardDeleteResponse{
		Subcategory:     *toSubcategoryResponse(result.Subcategory),
		ProductsDeleted: result.ProductsAffected,
	}, nil
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubcategoryResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
