package entity

import "time"

// Subcategory representa una subcategoría. Depende de una Category padre que
// debe existir al momento de crearla (integridad verificada al escribir, no
// por el store).
type Subcategory struct {
	ID          string
	CategoryID  string
	Name        string // único
	Slug        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
