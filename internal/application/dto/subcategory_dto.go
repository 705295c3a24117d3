package dto

import "time"

// CreateSubcategoryRequest entrada para crear una subcategoría. La categoría
// padre debe existir.
type CreateSubcategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
}

// UpdateSubcategoryRequest actualización parcial; si cambia CategoryID se
// revalida que la nueva categoría exista.
type UpdateSubcategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	Active      *bool   `json:"active"`
}

// SubcategoryResponse salida de una subcategoría.
type SubcategoryResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubcategoryDeactivateResponse resultado de la cascada de desactivación
// (un nivel: la subcategoría y sus productos).
type SubcategoryDeactivateResponse struct {
	Subcategory         SubcategoryResponse `json:"subcategory"`
	ProductsDeactivated int64               `json:"products_deactivated"`
}

// SubcategoryHardDeleteResponse resultado de la eliminación permanente.
type SubcategoryHardDeleteResponse struct {
	Subcategory     SubcategoryResponse `json:"subcategory"`
	ProductsDeleted int64               `json:"products_deleted"`
}
