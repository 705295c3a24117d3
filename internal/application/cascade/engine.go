// Package cascade implementa el motor de ciclo de vida jerárquico:
// desactivar, reactivar o eliminar permanentemente una raíz (Category o
// Subcategory) propagando la operación a sus dependientes.
//
// El motor es explícito y se invoca desde los use cases, no como hook oculto
// de guardado. No guarda estado entre invocaciones; cada llamada atraviesa
// Validar → Localizar dependientes → Aplicar → Reportar contra los puertos de
// repositorio, como una secuencia de escrituras independientes (no hay
// transacción que las envuelva). Un fallo a mitad detiene los pasos restantes
// y se reporta con CascadeError.
package cascade

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Engine aplica operaciones de ciclo de vida en cascada sobre la jerarquía
// Category → Subcategory → Product.
type Engine struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	products      repository.ProductRepository
	locks         *rootLocks
}

// NewEngine construye el motor con los puertos de persistencia.
func NewEngine(
	categories repository.CategoryRepository,
	subcategories repository.SubcategoryRepository,
	products repository.ProductRepository,
) *Engine {
	return &Engine{
		categories:    categories,
		subcategories: subcategories,
		products:      products,
		locks:         newRootLocks(),
	}
}

// CategoryResult reporte de una cascada con raíz Category.
type CategoryResult struct {
	Category              *entity.Category
	SubcategoriesAffected int64
	ProductsAffected      int64
}

// SubcategoryResult reporte de una cascada con raíz Subcategory.
type SubcategoryResult struct {
	Subcategory      *entity.Subcategory
	ProductsAffected int64
}

// DeactivateCategory marca active=false en la categoría, en todas sus
// subcategorías y en todos los productos con category_id de la raíz (sin
// filtrar por subcategoría: la desactivación a nivel categoría alcanza cada
// producto del subárbol). Los conteos reflejan filas realmente modificadas,
// así la operación es idempotente: una segunda pasada reporta 0.
func (e *Engine) DeactivateCategory(ctx context.Context, id string) (*CategoryResult, error) {
	defer e.locks.acquire(id)()

	category, err := e.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	var completed []string
	if _, err := e.categories.SetActive(ctx, id, false); err != nil {
		return nil, &CascadeError{Step: StepRootDeactivate, Completed: completed, Err: err}
	}
	completed = append(completed, StepRootDeactivate)

	subs, err := e.subcategories.DeactivateByCategory(ctx, id)
	if err != nil {
		return nil, &CascadeError{Step: StepSubcategoriesDeactivate, Completed: completed, Err: err}
	}
	completed = append(completed, StepSubcategoriesDeactivate)

	prods, err := e.products.DeactivateByCategory(ctx, id)
	if err != nil {
		return nil, &CascadeError{Step: StepProductsDeactivate, Completed: completed, Err: err}
	}

	category.Active = false
	category.UpdatedAt = time.Now()
	return &CategoryResult{
		Category:              category,
		SubcategoriesAffected: subs,
		ProductsAffected:      prods,
	}, nil
}

// ReactivateCategory vuelve a poner active=true SOLO en la categoría raíz.
// La reactivación no desciende: subcategorías y productos conservan su flag
// (asimetría deliberada respecto a la desactivación).
func (e *Engine) ReactivateCategory(ctx context.Context, id string) (*CategoryResult, error) {
	defer e.locks.acquire(id)()

	category, err := e.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	if _, err := e.categories.SetActive(ctx, id, true); err != nil {
		return nil, &CascadeError{Step: StepRootReactivate, Err: err}
	}

	category.Active = true
	category.UpdatedAt = time.Now()
	return &CategoryResult{Category: category}, nil
}

// HardDeleteCategory elimina permanentemente la categoría y todo su subárbol.
// El orden es obligatorio, hojas antes que padres: productos → subcategorías
// → categoría, para que un lector que observe el estado intermedio nunca vea
// un hijo apuntando a un padre inexistente. Si un paso falla, los padres NO
// se eliminan y el error reporta qué se completó.
func (e *Engine) HardDeleteCategory(ctx context.Context, id string) (*CategoryResult, error) {
	defer e.locks.acquire(id)()

	category, err := e.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	var completed []string
	prods, err := e.products.DeleteByCategory(ctx, id)
	if err != nil {
		return nil, &CascadeError{Step: StepProductsDelete, Completed: completed, Err: err}
	}
	completed = append(completed, StepProductsDelete)

	subs, err := e.subcategories.DeleteByCategory(ctx, id)
	if err != nil {
		return nil, &CascadeError{Step: StepSubcategoriesDelete, Completed: completed, Err: err}
	}
	completed = append(completed, StepSubcategoriesDelete)

	if err := e.categories.Delete(ctx, id); err != nil {
		return nil, &CascadeError{Step: StepRootDelete, Completed: completed, Err: err}
	}

	return &CategoryResult{
		Category:              category,
		SubcategoriesAffected: subs,
		ProductsAffected:      prods,
	}, nil
}

// DeactivateSubcategory es el mismo patrón un nivel abajo: desactiva la
// subcategoría y sus productos (alcance más estrecho que el caso de
// categoría: una subcategoría no tiene más hijos que productos).
func (e *Engine) DeactivateSubcategory(ctx context.Context, id string) (*SubcategoryResult, error) {
	defer e.locks.acquire(id)()

	subcategory, err := e.subcategories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}

	var completed []string
	if _, err := e.subcategories.SetActive(ctx, id, false); err != nil {
		return nil, &CascadeError{Step: StepRootDeactivate, Completed: completed, Err: err}
	}
	completed = append(completed, StepRootDeactivate)

	prods, err := e.products.DeactivateBySubcategory(ctx, id)
	if err != nil {
		return nil, &CascadeError{Step: StepProductsDeactivate, Completed: completed, Err: err}
	}

	subcategory.Active = false
	subcategory.UpdatedAt = time.Now()
	return &SubcategoryResult{Subcategory: subcategory, ProductsAffected: prods}, nil
}

// ReactivateSubcategory reactiva SOLO la subcategoría, sin tocar productos.
func (e *Engine) ReactivateSubcategory(ctx context.Context, id string) (*SubcategoryResult, error) {
	defer e.locks.acquire(id)()

	subcategory, err := e.subcategories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}

	if _, err := e.subcategories.SetActive(ctx, id, true); err != nil {
		return nil, &CascadeError{Step: StepRootReactivate, Err: err}
	}

	subcategory.Active = true
	subcategory.UpdatedAt = time.Now()
	return &SubcategoryResult{Subcategory: subcategory}, nil
}

// HardDeleteSubcategory elimina permanentemente la subcategoría y sus
// productos, productos primero.
func (e *Engine) HardDeleteSubcategory(ctx context.Context, id string) (*SubcategoryResult, error) {
	defer e.locks.acquire(id)()

	subcategory, err := e.subcategories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}

	var completed []string
	prods, err := e.products.DeleteBySubcategory(ctx, id)
	if err != nil {
		return nil, &CascadeError{Step: StepProductsDelete, Completed: completed, Err: err}
	}
	completed = append(completed, StepProductsDelete)

	if err := e.subcategories.Delete(ctx, id); err != nil {
		return nil, &CascadeError{Step: StepRootDelete, Completed: completed, Err: err}
	}

	return &SubcategoryResult{Subcategory: subcategory, ProductsAffected: prods}, nil
}
