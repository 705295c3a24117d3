package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Pertenece a exactamente una
// Subcategory y, derivado de ella, a una Category; SubcategoryID debe
// pertenecer a CategoryID (consistencia cruzada).
type Product struct {
	ID            string
	CategoryID    string
	SubcategoryID string
	Name          string // único
	Slug          string
	Description   string
	Price         decimal.Decimal // >= 0
	Stock         int             // >= 0
	CreatedBy     string          // User id, opcional; borrar el User no cascada al producto
	Images        []string        // urls, opcional
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
