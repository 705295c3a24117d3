package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Un producto referencia una
// categoría y una subcategoría que debe pertenecer a esa categoría; la
// consistencia cruzada se valida antes de cualquier escritura.
type ProductUseCase struct {
	repo          repository.ProductRepository
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	subcategories repository.SubcategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, subcategories: subcategories}
}

// Create crea un producto. Valida precio y stock no negativos, que la
// categoría exista, que la subcategoría pertenezca a la categoría y que el
// nombre sea único; ningún write llega al store si algo falla. Registra
// created_by con el actor autenticado.
func (uc *ProductUseCase) Create(ctx context.Context, createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.CategoryID == "" || in.SubcategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	category, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound // la categoría no existe
	}
	if err := uc.checkSubcategoryBelongs(ctx, in.SubcategoryID, in.CategoryID); err != nil {
		return nil, err
	}
	if existing, _ := uc.repo.GetByName(ctx, name); existing != nil {
		return nil, domain.ErrDuplicateName
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		Name:          name,
		Slug:          slug.Make(name),
		Description:   description,
		Price:         in.Price,
		Stock:         in.Stock,
		CreatedBy:     createdBy,
		Images:        in.Images,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, ""), nil
}

// GetByID obtiene un producto. viewerRole acota la respuesta: los auxiliares
// no ven created_by (shaping posterior a la autorización).
func (uc *ProductUseCase) GetByID(ctx context.Context, id, viewerRole string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product, viewerRole), nil
}

// List lista productos; por defecto solo activos.
func (uc *ProductUseCase) List(ctx context.Context, includeInactive bool, viewerRole string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, viewerRole))
	}
	return items, nil
}

// Update actualiza campos enviados. Si cambian las referencias se revalida
// la pertenencia subcategoría→categoría con los valores resultantes.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	categoryID := product.CategoryID
	subcategoryID := product.SubcategoryID
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	}
	if in.SubcategoryID != nil {
		subcategoryID = *in.SubcategoryID
	}
	if in.CategoryID != nil || in.SubcategoryID != nil {
		category, err := uc.categories.GetByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		if err := uc.checkSubcategoryBelongs(ctx, subcategoryID, categoryID); err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
		product.SubcategoryID = subcategoryID
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != product.Name {
			if existing, _ := uc.repo.GetByName(ctx, name); existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicateName
			}
			product.Name = name
			product.Slug = slug.Make(name)
		}
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Description = description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, ""), nil
}

// Deactivate marca el producto como inactivo (soft delete; un producto no
// tiene dependientes, no hay cascada).
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.repo.SetActive(ctx, id, false); err != nil {
		return nil, err
	}
	product.Active = false
	product.UpdatedAt = time.Now()
	return toProductResponse(product, ""), nil
}

// HardDelete elimina permanentemente el producto.
func (uc *ProductUseCase) HardDelete(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toProductResponse(product, ""), nil
}

// checkSubcategoryBelongs valida que la subcategoría exista y pertenezca a
// la categoría dada.
func (uc *ProductUseCase) checkSubcategoryBelongs(ctx context.Context, subcategoryID, categoryID string) error {
	subcategory, err := uc.subcategories.GetByID(ctx, subcategoryID)
	if err != nil {
		return err
	}
	if subcategory == nil || subcategory.CategoryID != categoryID {
		return domain.ErrReferentialIntegrity
	}
	return nil
}

func toProductResponse(p *entity.Product, viewerRole string) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resp := &dto.ProductResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		CreatedBy:     p.CreatedBy,
		Images:        p.Images,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	// Los auxiliares no ven quién creó el producto.
	if viewerRole == entity.RoleAuxiliar {
		resp.CreatedBy = ""
	}
	return resp
}
