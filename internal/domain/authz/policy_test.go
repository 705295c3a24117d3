package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/authz"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// La política es una función pura: la matriz completa rol × acción se prueba
// sin HTTP ni base de datos.
func TestCanPerform_RecursosDeCatalogo(t *testing.T) {
	catalogResources := []authz.Resource{
		authz.ResourceCategory, authz.ResourceSubcategory, authz.ResourceProduct,
	}
	cases := []struct {
		name   string
		role   string
		action authz.Action
		want   bool
	}{
		{"admin puede ver", entity.RoleAdmin, authz.ActionView, true},
		{"admin puede crear", entity.RoleAdmin, authz.ActionCreate, true},
		{"admin puede actualizar", entity.RoleAdmin, authz.ActionUpdate, true},
		{"admin puede soft delete", entity.RoleAdmin, authz.ActionSoftDelete, true},
		{"admin puede hard delete", entity.RoleAdmin, authz.ActionHardDelete, true},

		{"coordinador puede ver", entity.RoleCoordinador, authz.ActionView, true},
		{"coordinador puede crear", entity.RoleCoordinador, authz.ActionCreate, true},
		{"coordinador puede actualizar", entity.RoleCoordinador, authz.ActionUpdate, true},
		{"coordinador puede soft delete", entity.RoleCoordinador, authz.ActionSoftDelete, true},
		{"coordinador NO puede hard delete", entity.RoleCoordinador, authz.ActionHardDelete, false},

		{"auxiliar puede ver", entity.RoleAuxiliar, authz.ActionView, true},
		{"auxiliar NO puede crear", entity.RoleAuxiliar, authz.ActionCreate, false},
		{"auxiliar NO puede actualizar", entity.RoleAuxiliar, authz.ActionUpdate, false},
		{"auxiliar NO puede soft delete", entity.RoleAuxiliar, authz.ActionSoftDelete, false},
		{"auxiliar NO puede hard delete", entity.RoleAuxiliar, authz.ActionHardDelete, false},

		{"rol desconocido denegado incluso para ver", "invitado", authz.ActionView, false},
		{"rol vacío denegado", "", authz.ActionView, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, res := range catalogResources {
				got := authz.CanPerform(tc.role, tc.action, res)
				assert.Equal(t, tc.want, got, "rol=%s acción=%s recurso=%s", tc.role, tc.action, res)
			}
		})
	}
}

func TestCanPerform_RecursoUsuarios(t *testing.T) {
	// Mutaciones sobre usuarios: solo admin.
	for _, action := range []authz.Action{
		authz.ActionCreate, authz.ActionUpdate, authz.ActionSoftDelete, authz.ActionHardDelete,
	} {
		assert.True(t, authz.CanPerform(entity.RoleAdmin, action, authz.ResourceUser))
		assert.False(t, authz.CanPerform(entity.RoleCoordinador, action, authz.ResourceUser))
		assert.False(t, authz.CanPerform(entity.RoleAuxiliar, action, authz.ResourceUser))
	}
	// Ver usuarios: cualquier rol válido (el alcance lo acota CanViewUser).
	assert.True(t, authz.CanPerform(entity.RoleAuxiliar, authz.ActionView, authz.ResourceUser))
	assert.False(t, authz.CanPerform("invitado", authz.ActionView, authz.ResourceUser))
}

func TestCanViewUser(t *testing.T) {
	admin := authz.Actor{ID: "a1", Role: entity.RoleAdmin}
	coordinador := authz.Actor{ID: "c1", Role: entity.RoleCoordinador}
	auxiliar := authz.Actor{ID: "x1", Role: entity.RoleAuxiliar}

	// admin ve a todos, incluidos otros admin.
	assert.True(t, authz.CanViewUser(admin, "a2", entity.RoleAdmin))
	assert.True(t, authz.CanViewUser(admin, "x1", entity.RoleAuxiliar))

	// coordinador ve a todos menos a los admin.
	assert.True(t, authz.CanViewUser(coordinador, "c2", entity.RoleCoordinador))
	assert.True(t, authz.CanViewUser(coordinador, "x1", entity.RoleAuxiliar))
	assert.False(t, authz.CanViewUser(coordinador, "a1", entity.RoleAdmin),
		"coordinador no debe ver usuarios admin")

	// auxiliar solo se ve a sí mismo.
	assert.True(t, authz.CanViewUser(auxiliar, "x1", entity.RoleAuxiliar))
	assert.False(t, authz.CanViewUser(auxiliar, "x2", entity.RoleAuxiliar))
	assert.False(t, authz.CanViewUser(auxiliar, "c1", entity.RoleCoordinador))

	// rol desconocido no ve nada.
	assert.False(t, authz.CanViewUser(authz.Actor{ID: "z", Role: "invitado"}, "z", "auxiliar"))
}

func TestCanModifyUser(t *testing.T) {
	admin := authz.Actor{ID: "a1", Role: entity.RoleAdmin}
	auxiliar := authz.Actor{ID: "x1", Role: entity.RoleAuxiliar}

	assert.True(t, authz.CanModifyUser(admin, "cualquiera"))
	assert.True(t, authz.CanModifyUser(auxiliar, "x1"), "cualquier usuario edita sus propios datos")
	assert.False(t, authz.CanModifyUser(auxiliar, "x2"))
}
