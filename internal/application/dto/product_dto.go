package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. SubcategoryID debe
// pertenecer a CategoryID.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"required,min=1"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Stock         int             `json:"stock" validate:"min=0"`
	CategoryID    string          `json:"category_id" validate:"required,uuid"`
	SubcategoryID string          `json:"subcategory_id" validate:"required,uuid"`
	Images        []string        `json:"images" validate:"omitempty,dive,url"`
}

// UpdateProductRequest actualización parcial; si cambian las referencias se
// revalida la consistencia categoría/subcategoría.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,min=1"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,uuid"`
	SubcategoryID *string          `json:"subcategory_id" validate:"omitempty,uuid"`
	Images        []string         `json:"images" validate:"omitempty,dive,url"`
	Active        *bool            `json:"active"`
}

// ProductResponse salida de un producto. CreatedBy se omite para viewers
// con rol auxiliar (shaping posterior a la autorización).
type ProductResponse struct {
	ID            string          `json:"id"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	CreatedBy     string          `json:"created_by,omitempty"`
	Images        []string        `json:"images,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
