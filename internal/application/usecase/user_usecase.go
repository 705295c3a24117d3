package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/authz"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de usuarios con control de acceso por rol. La
// visibilidad es uniforme entre lista y detalle: auxiliar solo se ve a sí
// mismo, coordinador ve todos menos los admin, admin ve todo.
type UserUseCase struct {
	repo       repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, bcryptCost: bcryptCost}
}

// List devuelve los usuarios visibles para el actor, aplicando el mismo
// filtro de la política de detalle.
func (uc *UserUseCase) List(ctx context.Context, actor authz.Actor, includeInactive bool) ([]dto.UserResponse, error) {
	if actor.Role == entity.RoleAuxiliar {
		// Un auxiliar solo se ve a sí mismo, también en el listado.
		user, err := uc.repo.GetByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return []dto.UserResponse{}, nil
		}
		return []dto.UserResponse{*auth.ToUserResponse(user)}, nil
	}

	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		if !authz.CanViewUser(actor, u.ID, u.Role) {
			continue
		}
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario si la política lo permite. La denegación es
// 403, distinta del 404 de recurso ausente.
func (uc *UserUseCase) GetByID(ctx context.Context, actor authz.Actor, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanViewUser(actor, user.ID, user.Role) {
		return nil, domain.ErrForbidden
	}
	return auth.ToUserResponse(user), nil
}

// Update actualiza un usuario. Un admin modifica a cualquiera (incluidos rol
// y active); cualquier otro rol solo sus propios datos, nunca su rol ni su
// flag active.
func (uc *UserUseCase) Update(ctx context.Context, actor authz.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !authz.CanModifyUser(actor, id) {
		return nil, domain.ErrForbidden
	}
	isAdmin := actor.Role == entity.RoleAdmin
	if (in.Role != nil || in.Active != nil) && !isAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, domain.ErrInvalidInput
		}
		if username != user.Username {
			if existing, _ := uc.repo.GetByUsername(ctx, username); existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicateName
			}
			user.Username = username
		}
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return nil, domain.ErrInvalidInput
		}
		if email != user.Email {
			if existing, _ := uc.repo.GetByEmail(ctx, email); existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicateName
			}
			user.Email = email
		}
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete desactiva (default) o elimina permanentemente (hard=true) un
// usuario; solo admin. Borrar un usuario nunca cascada a los productos que
// creó: la referencia created_by es débil.
func (uc *UserUseCase) Delete(ctx context.Context, actor authz.Actor, id string, hard bool) (*dto.UserResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if hard {
		if err := uc.repo.Delete(ctx, id); err != nil {
			return nil, err
		}
		return auth.ToUserResponse(user), nil
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
