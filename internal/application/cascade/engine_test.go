package cascade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/cascade"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Implementan solo los métodos que el motor invoca (la
// interfaz embebida cubre el resto) y registran el orden de llamadas para
// verificar hojas-antes-que-padres.
// ──────────────────────────────────────────────────────────────────────────────

type callLog struct {
	calls []string
}

func (l *callLog) record(name string) {
	l.calls = append(l.calls, name)
}

type fakeCategoryRepo struct {
	repository.CategoryRepository
	log        *callLog
	categories map[string]*entity.Category
	failDelete error
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) SetActive(_ context.Context, id string, active bool) (int64, error) {
	f.log.record("categories.SetActive")
	c, ok := f.categories[id]
	if !ok || c.Active == active {
		return 0, nil
	}
	c.Active = active
	return 1, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	f.log.record("categories.Delete")
	if f.failDelete != nil {
		return f.failDelete
	}
	delete(f.categories, id)
	return nil
}

type fakeSubcategoryRepo struct {
	repository.SubcategoryRepository
	log               *callLog
	subcategories     map[string]*entity.Subcategory
	failDeleteByCat   error
	failDeactivateCat error
}

func (f *fakeSubcategoryRepo) GetByID(_ context.Context, id string) (*entity.Subcategory, error) {
	return f.subcategories[id], nil
}

func (f *fakeSubcategoryRepo) SetActive(_ context.Context, id string, active bool) (int64, error) {
	f.log.record("subcategories.SetActive")
	s, ok := f.subcategories[id]
	if !ok || s.Active == active {
		return 0, nil
	}
	s.Active = active
	return 1, nil
}

func (f *fakeSubcategoryRepo) DeactivateByCategory(_ context.Context, categoryID string) (int64, error) {
	f.log.record("subcategories.DeactivateByCategory")
	if f.failDeactivateCat != nil {
		return 0, f.failDeactivateCat
	}
	var n int64
	for _, s := range f.subcategories {
		if s.CategoryID == categoryID && s.Active {
			s.Active = false
			n++
		}
	}
	return n, nil
}

func (f *fakeSubcategoryRepo) Delete(_ context.Context, id string) error {
	f.log.record("subcategories.Delete")
	delete(f.subcategories, id)
	return nil
}

func (f *fakeSubcategoryRepo) DeleteByCategory(_ context.Context, categoryID string) (int64, error) {
	f.log.record("subcategories.DeleteByCategory")
	if f.failDeleteByCat != nil {
		return 0, f.failDeleteByCat
	}
	var n int64
	for id, s := range f.subcategories {
		if s.CategoryID == categoryID {
			delete(f.subcategories, id)
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	log               *callLog
	products          map[string]*entity.Product
	failDeactivateCat error
}

func (f *fakeProductRepo) DeactivateByCategory(_ context.Context, categoryID string) (int64, error) {
	f.log.record("products.DeactivateByCategory")
	if f.failDeactivateCat != nil {
		return 0, f.failDeactivateCat
	}
	var n int64
	for _, p := range f.products {
		if p.CategoryID == categoryID && p.Active {
			p.Active = false
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) DeactivateBySubcategory(_ context.Context, subcategoryID string) (int64, error) {
	f.log.record("products.DeactivateBySubcategory")
	var n int64
	for _, p := range f.products {
		if p.SubcategoryID == subcategoryID && p.Active {
			p.Active = false
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) DeleteByCategory(_ context.Context, categoryID string) (int64, error) {
	f.log.record("products.DeleteByCategory")
	var n int64
	for id, p := range f.products {
		if p.CategoryID == categoryID {
			delete(f.products, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) DeleteBySubcategory(_ context.Context, subcategoryID string) (int64, error) {
	f.log.record("products.DeleteBySubcategory")
	var n int64
	for id, p := range f.products {
		if p.SubcategoryID == subcategoryID {
			delete(f.products, id)
			n++
		}
	}
	return n, nil
}

// fixture arma la jerarquía Bebidas → {Gaseosas(2 productos), Jugos(1 producto)}.
func fixture() (*fakeCategoryRepo, *fakeSubcategoryRepo, *fakeProductRepo, *callLog) {
	log := &callLog{}
	cats := &fakeCategoryRepo{log: log, categories: map[string]*entity.Category{
		"cat-1": {ID: "cat-1", Name: "Bebidas", Active: true},
	}}
	subs := &fakeSubcategoryRepo{log: log, subcategories: map[string]*entity.Subcategory{
		"sub-1": {ID: "sub-1", CategoryID: "cat-1", Name: "Gaseosas", Active: true},
		"sub-2": {ID: "sub-2", CategoryID: "cat-1", Name: "Jugos", Active: true},
	}}
	prods := &fakeProductRepo{log: log, products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", CategoryID: "cat-1", SubcategoryID: "sub-1", Name: "Cola", Active: true},
		"prod-2": {ID: "prod-2", CategoryID: "cat-1", SubcategoryID: "sub-1", Name: "Limonada", Active: true},
		"prod-3": {ID: "prod-3", CategoryID: "cat-1", SubcategoryID: "sub-2", Name: "Jugo de mango", Active: true},
	}}
	return cats, subs, prods, log
}

// ──────────────────────────────────────────────────────────────────────────────
// Desactivación en cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivateCategory_CascadaCompleta(t *testing.T) {
	cats, subs, prods, _ := fixture()
	engine := cascade.NewEngine(cats, subs, prods)

	result, err := engine.DeactivateCategory(context.Background(), "cat-1")
	require.NoError(t, err)

	assert.False(t, result.Category.Active, "la raíz debe quedar inactiva")
	assert.Equal(t, int64(2), result.SubcategoriesAffected)
	assert.Equal(t, int64(3), result.ProductsAffected)

	for id, s := range subs.subcategories {
		assert.False(t, s.Active, "subcategoría %s debe quedar inactiva", id)
	}
	for id, p := range prods.products {
		assert.False(t, p.Active, "producto %s debe quedar inactivo", id)
	}
}

func TestDeactivateCategory_SegundaPasadaReportaCero(t *testing.T) {
	cats, subs, prods, _ := fixture()
	engine := cascade.NewEngine(cats, subs, prods)

	_, err := engine.DeactivateCategory(context.Background(), "cat-1")
	require.NoError(t, err)

	// La operación es idempotente: re-desactivar no es error y los conteos
	// reflejan que nada cambió.
	result, err := engine.DeactivateCategory(context.Background(), "cat-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.SubcategoriesAffected)
	assert.Equal(t, int64(0), result.ProductsAffected)
}

func TestDeactivateCategory_SinHijos_ConteosCero(t *testing.T) {
	cats, subs, prods, _ := fixture()
	cats.categories["cat-2"] = &entity.Category{ID: "cat-2", Name: "Vacía", Active: true}
	engine := cascade.NewEngine(cats, subs, prods)

	result, err := engine.DeactivateCategory(context.Background(), "cat-2")
	require.NoError(t, err)
	assert.False(t, result.Category.Active)
	assert.Equal(t, int64(0), result.SubcategoriesAffected)
	assert.Equal(t, int64(0), result.ProductsAffected)
}

func TestDeactivateCategory_RaizInexistente(t *testing.T) {
	cats, subs, prods, _ := fixture()
	engine := cascade.NewEngine(cats, subs, prods)

	_, err := engine.DeactivateCategory(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeactivateSubcategory_SoloSusProductos(t *testing.T) {
	cats, subs, prods, _ := fixture()
	engine := cascade.NewEngine(cats, subs, prods)

	result, err := engine.DeactivateSubcategory(context.Background(), "sub-1")
	require.NoError(t, err)

	assert.False(t, result.Subcategory.Active)
	assert.Equal(t, int64(2), result.ProductsAffected, "solo los productos de Gaseosas")

	// La otra rama del árbol no se toca.
	assert.True(t, subs.subcategories["sub-2"].Active)
	assert.True(t, prods.products["prod-3"].Active)
	assert.True(t, cats.categories["cat-1"].Active, "el padre nunca se desactiva hacia arriba")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reactivación: deliberadamente NO desciende
// ──────────────────────────────────────────────────────────────────────────────

func TestReactivateCategory_NoCascadaHaciaAbajo(t *testing.T) {
	cats, subs, prods, _ := fixture()
	engine := cascade.NewEngine(cats, subs, prods)

	_, err := engine.DeactivateCategory(context.Background(), "cat-1")
	require.NoError(t, err)

	result, err := engine.ReactivateCategory(context.Background(), "cat-1")
	require.NoError(t, err)

	assert.True(t, result.Category.Active, "la raíz debe reactivarse")
	for id, s := range subs.subcategories {
		assert.False(t, s.Active, "subcategoría %s debe seguir inactiva", id)
	}
	for id, p := range prods.products {
		assert.False(t, p.Active, "producto %s debe seguir inactivo", id)
	}
}

func TestReactivateSubcategory_NoTocaProductos(t *testing.T) {
	cats, subs, prods, _ := fixture()
	engine := cascade.NewEngine(cats, subs, prods)

	_, err := engine.DeactivateSubcategory(context.Background(), "sub-1")
	require.NoError(t, err)

	result, err := engine.ReactivateSubcategory(context.Background(), "sub-1")
	require.NoError(t, err)

	assert.True(t, result.Subcategory.Active)
	assert.False(t, prods.products["prod-1"].Active)
	assert.False(t, prods.products["prod-2"].Active)
}

// ──────────────────────────────────────────────────────────────────────────────
// Hard delete: completo y hojas antes que padres
// ──────────────────────────────────────────────────────────────────────────────

func TestHardDeleteCategory_EliminaSubarbolCompleto(t *testing.T) {
	cats, subs, prods, log := fixture()
	engine := cascade.NewEngine(cats, subs, prods)

	result, err := engine.HardDeleteCategory(context.Background(), "cat-1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.SubcategoriesAffected)
	assert.Equal(t, int64(3), result.ProductsAffected)
	assert.Empty(t, cats.categories)
	assert.Empty(t, subs.subcategories)
	assert.Empty(t, prods.products)

	// Orden obligatorio: productos → subcategorías → categoría.
	assert.Equal(t, []string{
		"products.DeleteByCategory",
		"subcategories.DeleteByCategory",
		"categories.Delete",
	}, log.calls)
}

func TestHardDeleteSubcategory_ProductosPrimero(t *testing.T) {
	cats, subs, prods, log := fixture()
	engine := cascade.NewEngine(cats, subs, prods)

	result, err := engine.HardDeleteSubcategory(context.Background(), "sub-2")
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.ProductsAffected)
	assert.NotContains(t, subs.subcategories, "sub-2")
	assert.NotContains(t, prods.products, "prod-3")

	// El resto del árbol queda intacto.
	assert.Contains(t, cats.categories, "cat-1")
	assert.Contains(t, subs.subcategories, "sub-1")
	assert.Contains(t, prods.products, "prod-1")

	assert.Equal(t, []string{
		"products.DeleteBySubcategory",
		"subcategories.Delete",
	}, log.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo a mitad de secuencia
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivateCategory_FalloEnProductos_ReportaCompletados(t *testing.T) {
	cats, subs, prods, _ := fixture()
	boom := errors.New("conexión perdida")
	prods.failDeactivateCat = boom
	engine := cascade.NewEngine(cats, subs, prods)

	_, err := engine.DeactivateCategory(context.Background(), "cat-1")
	require.Error(t, err)

	var cerr *cascade.CascadeError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cascade.StepProductsDeactivate, cerr.Step)
	assert.Equal(t, []string{cascade.StepRootDeactivate, cascade.StepSubcategoriesDeactivate}, cerr.Completed)
	assert.ErrorIs(t, err, boom, "el error original debe ser alcanzable vía Unwrap")

	// Lo que alcanzó a ejecutarse queda aplicado (no hay rollback).
	assert.False(t, cats.categories["cat-1"].Active)
	assert.False(t, subs.subcategories["sub-1"].Active)
}

func TestHardDeleteCategory_FalloEnSubcategorias_NoBorraRaiz(t *testing.T) {
	cats, subs, prods, _ := fixture()
	boom := errors.New("timeout")
	subs.failDeleteByCat = boom
	engine := cascade.NewEngine(cats, subs, prods)

	_, err := engine.HardDeleteCategory(context.Background(), "cat-1")
	require.Error(t, err)

	var cerr *cascade.CascadeError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cascade.StepSubcategoriesDelete, cerr.Step)
	assert.Equal(t, []string{cascade.StepProductsDelete}, cerr.Completed)

	// Los padres nunca se borran si un paso hoja falló: no quedan hijos
	// huérfanos apuntando a un padre inexistente.
	assert.Contains(t, cats.categories, "cat-1")
	assert.Contains(t, subs.subcategories, "sub-1")
	assert.Empty(t, prods.products, "los productos ya se habían eliminado")
}
