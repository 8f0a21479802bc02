package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/avc/topup-storefront/internal/utils/jwt"
	"github.com/avc/topup-storefront/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
	}
}

// Register регистрирует покупателя и выдает токен.
// Администраторы назначаются в БД, через регистрацию роль не выдается.
func (s *AuthService) Register(ctx context.Context, login, userPassword string) (*domain.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, domain.NewValidationError("login", "required")
	}
	if userPassword == "" {
		return nil, domain.NewValidationError("password", "required")
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		if errors.Is(err, password.ErrPolicy) {
			return nil, domain.NewValidationError("password", err.Error())
		}
		return nil, fmt.Errorf("auth service: failed to hash password for user %q: %w", login, err)
	}

	user, err := s.userRepo.CreateUser(ctx, login, hash)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to register user %q: %w", login, err)
	}

	return s.issue(user)
}

// Login аутентифицирует пользователя
func (s *AuthService) Login(ctx context.Context, login, userPassword string) (*domain.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || userPassword == "" {
		return nil, domain.NewValidationError("login", "login and password required")
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to get user %q: %w", login, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to check password for user %q: %w", login, err)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (*domain.Session, error) {
	role := user.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	token, err := s.jwtManager.Generate(user.ID, string(role))
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return &domain.Session{Token: token, UserID: user.ID, Role: role}, nil
}
