// Package authz implementa la política de autorización como funciones puras
// de decisión: (rol, acción, recurso) → permitir/denegar. No toca la base de
// datos ni el contexto HTTP; los handlers traducen una denegación a 403,
// distinto de 401 (sin token) y de 404 (recurso ausente).
package authz

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// Action acciones sobre recursos del catálogo.
type Action string

const (
	ActionView       Action = "view"
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionSoftDelete Action = "soft_delete"
	ActionHardDelete Action = "hard_delete"
)

// Resource tipos de recurso sobre los que se decide.
type Resource string

const (
	ResourceCategory    Resource = "category"
	ResourceSubcategory Resource = "subcategory"
	ResourceProduct     Resource = "product"
	ResourceUser        Resource = "user"
)

// Actor identidad decodificada del token con la que se evalúa la política.
type Actor struct {
	ID   string
	Role string
}

// CanPerform decide si el rol puede ejecutar la acción sobre el tipo de
// recurso. Para ResourceUser solo cubre la parte independiente del objetivo;
// las reglas que dependen del usuario objetivo están en CanViewUser.
func CanPerform(role string, action Action, resource Resource) bool {
	if resource == ResourceUser {
		return canPerformOnUsers(role, action)
	}
	switch action {
	case ActionView:
		return entity.ValidRole(role)
	case ActionCreate, ActionUpdate, ActionSoftDelete:
		return role == entity.RoleAdmin || role == entity.RoleCoordinador
	case ActionHardDelete:
		return role == entity.RoleAdmin
	}
	return false
}

func canPerformOnUsers(role string, action Action) bool {
	switch action {
	case ActionView:
		// Cualquier rol puede al menos verse a sí mismo; el alcance real
		// lo acota CanViewUser.
		return entity.ValidRole(role)
	case ActionCreate, ActionUpdate, ActionSoftDelete, ActionHardDelete:
		return role == entity.RoleAdmin
	}
	return false
}

// CanViewUser decide si el actor puede ver al usuario objetivo.
// Reglas (uniformes para lista y detalle):
//   - auxiliar: solo su propio perfil, sin importar la acción.
//   - coordinador: todos menos los admin.
//   - admin: todos.
func CanViewUser(actor Actor, targetID, targetRole string) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleCoordinador:
		return targetRole != entity.RoleAdmin
	case entity.RoleAuxiliar:
		return actor.ID == targetID
	}
	return false
}

// CanModifyUser decide si el actor puede modificar al usuario objetivo.
// admin modifica a cualquiera; los demás roles solo sus propios datos
// (y nunca su propio rol ni su flag active, eso lo valida el use case).
func CanModifyUser(actor Actor, targetID string) bool {
	if actor.Role == entity.RoleAdmin {
		return true
	}
	return actor.ID == targetID
}
