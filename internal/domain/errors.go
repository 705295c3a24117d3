package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrDuplicateName        = errors.New("ya existe un recurso con ese nombre")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrAccountInactive      = errors.New("cuenta inactiva")
	ErrReferentialIntegrity = errors.New("la referencia no existe o no corresponde")
)
