package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Config parámetros de emisión de tokens y hashing, inyectados al arranque
// (secret, TTLs y costo de bcrypt son valores de despliegue).
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration // default 24h
	RefreshTTL time.Duration // default 7 días
	BcryptCost int
}

// AuthUseCase casos de uso de autenticación: registro, login y refresh.
type AuthUseCase struct {
	users repository.UserRepository
	cfg   Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, cfg Config) *AuthUseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{users: users, cfg: cfg}
}

// Register crea un usuario: normaliza el email a minúsculas, hashea la
// contraseña con bcrypt (costo de config) y persiste. Devuelve
// ErrDuplicateName si el username o el email ya existen. Rol por defecto:
// auxiliar.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAuxiliar
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if existing, _ := uc.users.GetByUsername(ctx, username); existing != nil {
		return nil, domain.ErrDuplicateName
	}
	if existing, _ := uc.users.GetByEmail(ctx, email); existing != nil {
		return nil, domain.ErrDuplicateName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.tokenPair(user)
}

// Login verifica identifier (username o email) + password y emite el par de
// tokens. Usuario inexistente y contraseña incorrecta devuelven el MISMO
// ErrUnauthorized para no permitir enumeración de identidades. Un usuario
// inactivo no puede iniciar sesión (ErrAccountInactive).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.SigninRequest) (*dto.AuthResponse, error) {
	identifier := strings.TrimSpace(in.Identifier())
	if identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrAccountInactive
	}
	return uc.tokenPair(user)
}

// Refresh valida un refresh token y emite un par nuevo. Un token de acceso
// presentado aquí se rechaza; el usuario debe seguir existiendo y activo.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := jwt.Parse(uc.cfg.Secret, refreshToken)
	if err != nil || claims.TokenType != jwt.TypeRefresh {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrAccountInactive
	}
	return uc.tokenPair(user)
}

func (uc *AuthUseCase) tokenPair(user *entity.User) (*dto.AuthResponse, error) {
	access, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Email, user.Role, uc.cfg.Issuer, jwt.TypeAccess, uc.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Email, user.Role, uc.cfg.Issuer, jwt.TypeRefresh, uc.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea la entidad a la respuesta pública. El hash de
// contraseña no tiene campo en el DTO: nunca se serializa.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
