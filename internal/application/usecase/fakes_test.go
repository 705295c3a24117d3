package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Repositorios en memoria para los tests de los use cases. Implementan los
// puertos completos sobre maps; `writes` cuenta las escrituras para verificar
// que una validación fallida no deja rastro en el store.

type memCategoryRepo struct {
	categories map[string]*entity.Category
	writes     int
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[string]*entity.Category{}}
}

func (m *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	m.writes++
	m.categories[c.ID] = c
	return nil
}

func (m *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return m.categories[id], nil
}

func (m *memCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	m.writes++
	m.categories[c.ID] = c
	return nil
}

func (m *memCategoryRepo) List(_ context.Context, includeInactive bool) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range m.categories {
		if !includeInactive && !c.Active {
			continue
		}
		list = append(list, c)
	}
	return list, nil
}

func (m *memCategoryRepo) SetActive(_ context.Context, id string, active bool) (int64, error) {
	m.writes++
	c, ok := m.categories[id]
	if !ok || c.Active == active {
		return 0, nil
	}
	c.Active = active
	return 1, nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id string) error {
	m.writes++
	delete(m.categories, id)
	return nil
}

type memSubcategoryRepo struct {
	subcategories map[string]*entity.Subcategory
	writes        int
}

func newMemSubcategoryRepo() *memSubcategoryRepo {
	return &memSubcategoryRepo{subcategories: map[string]*entity.Subcategory{}}
}

func (m *memSubcategoryRepo) Create(_ context.Context, s *entity.Subcategory) error {
	m.writes++
	m.subcategories[s.ID] = s
	return nil
}

func (m *memSubcategoryRepo) GetByID(_ context.Context, id string) (*entity.Subcategory, error) {
	return m.subcategories[id], nil
}

func (m *memSubcategoryRepo) GetByName(_ context.Context, name string) (*entity.Subcategory, error) {
	for _, s := range m.subcategories {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memSubcategoryRepo) Update(_ context.Context, s *entity.Subcategory) error {
	m.writes++
	m.subcategories[s.ID] = s
	return nil
}

func (m *memSubcategoryRepo) List(_ context.Context, includeInactive bool) ([]*entity.Subcategory, error) {
	var list []*entity.Subcategory
	for _, s := range m.subcategories {
		if !includeInactive && !s.Active {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}

func (m *memSubcategoryRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.Subcategory, error) {
	var list []*entity.Subcategory
	for _, s := range m.subcategories {
		if s.CategoryID == categoryID {
			list = append(list, s)
		}
	}
	return list, nil
}

func (m *memSubcategoryRepo) SetActive(_ context.Context, id string, active bool) (int64, error) {
	m.writes++
	s, ok := m.subcategories[id]
	if !ok || s.Active == active {
		return 0, nil
	}
	s.Active = active
	return 1, nil
}

func (m *memSubcategoryRepo) DeactivateByCategory(_ context.Context, categoryID string) (int64, error) {
	m.writes++
	var n int64
	for _, s := range m.subcategories {
		if s.CategoryID == categoryID && s.Active {
			s.Active = false
			n++
		}
	}
	return n, nil
}

func (m *memSubcategoryRepo) Delete(_ context.Context, id string) error {
	m.writes++
	delete(m.subcategories, id)
	return nil
}

func (m *memSubcategoryRepo) DeleteByCategory(_ context.Context, categoryID string) (int64, error) {
	m.writes++
	var n int64
	for id, s := range m.subcategories {
		if s.CategoryID == categoryID {
			delete(m.subcategories, id)
			n++
		}
	}
	return n, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
	writes   int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	m.writes++
	m.products[p.ID] = p
	return nil
}

func (m *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.products[id], nil
}

func (m *memProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	m.writes++
	m.products[p.ID] = p
	return nil
}

func (m *memProductRepo) List(_ context.Context, includeInactive bool) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range m.products {
		if !includeInactive && !p.Active {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (m *memProductRepo) SetActive(_ context.Context, id string, active bool) (int64, error) {
	m.writes++
	p, ok := m.products[id]
	if !ok || p.Active == active {
		return 0, nil
	}
	p.Active = active
	return 1, nil
}

func (m *memProductRepo) DeactivateByCategory(_ context.Context, categoryID string) (int64, error) {
	m.writes++
	var n int64
	for _, p := range m.products {
		if p.CategoryID == categoryID && p.Active {
			p.Active = false
			n++
		}
	}
	return n, nil
}

func (m *memProductRepo) DeactivateBySubcategory(_ context.Context, subcategoryID string) (int64, error) {
	m.writes++
	var n int64
	for _, p := range m.products {
		if p.SubcategoryID == subcategoryID && p.Active {
			p.Active = false
			n++
		}
	}
	return n, nil
}

func (m *memProductRepo) Delete(_ context.Context, id string) error {
	m.writes++
	delete(m.products, id)
	return nil
}

func (m *memProductRepo) DeleteByCategory(_ context.Context, categoryID string) (int64, error) {
	m.writes++
	var n int64
	for id, p := range m.products {
		if p.CategoryID == categoryID {
			delete(m.products, id)
			n++
		}
	}
	return n, nil
}

func (m *memProductRepo) DeleteBySubcategory(_ context.Context, subcategoryID string) (int64, error) {
	m.writes++
	var n int64
	for id, p := range m.products {
		if p.SubcategoryID == subcategoryID {
			delete(m.products, id)
			n++
		}
	}
	return n, nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == identifier || u.Email == strings.ToLower(identifier) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Update(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) List(_ context.Context, includeInactive bool) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range m.users {
		if !includeInactive && !u.Active {
			continue
		}
		list = append(list, u)
	}
	return list, nil
}

func (m *memUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}
