package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
}

// UpdateCategoryRequest actualización parcial. Active=false dispara la
// cascada de desactivación; Active=true reactiva SOLO la categoría (la
// reactivación no desciende).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Active      *bool   `json:"active"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryDeactivateResponse resultado de la cascada de desactivación con
// conteos por nivel (filas realmente modificadas, no filas coincidentes).
type CategoryDeactivateResponse struct {
	Category                 CategoryResponse `json:"category"`
	SubcategoriesDeactivated int64            `json:"subcategories_deactivated"`
	ProductsDeactivated      int64            `json:"products_deactivated"`
}

// CategoryHardDeleteResponse resultado de la eliminación permanente en cascada.
type CategoryHardDeleteResponse struct {
	Category             CategoryResponse `json:"category"`
	SubcategoriesDeleted int64            `json:"subcategories_deleted"`
	ProductsDeleted      int64            `json:"products_deleted"`
}
