package entity

import "time"

// Category representa una categoría del catálogo, raíz de la jerarquía
// Category → Subcategory → Product.
type Category struct {
	ID          string
	Name        string // único, sin espacios al inicio/final
	Slug        string // derivado del nombre
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
