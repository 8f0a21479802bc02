package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	domainmocks "github.com/avc/topup-storefront/internal/domain/mocks"
	"github.com/avc/topup-storefront/internal/utils/jwt"
	"github.com/avc/topup-storefront/internal/utils/password"
	passwordmocks "github.com/avc/topup-storefront/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashed", Role: domain.RoleCustomer}

		mockHasher.EXPECT().Hash("password123").Return("hashed", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "testuser", "hashed").Return(user, nil).Once()

		session, err := svc.Register(ctx, " testuser ", "password123")
		require.NoError(t, err)

		assert.Equal(t, int64(1), session.UserID)
		assert.Equal(t, domain.RoleCustomer, session.Role)

		claims, err := jwtManager.Validate(session.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("Empty login", func(t *testing.T) {
		session, err := svc.Register(ctx, "", "password")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, session)
	})

	t.Run("Empty password", func(t *testing.T) {
		session, err := svc.Register(ctx, "testuser", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, session)
	})

	t.Run("Password policy", func(t *testing.T) {
		mockHasher.EXPECT().Hash("abc").Return("", password.ErrPolicy).Once()

		session, err := svc.Register(ctx, "testuser", "abc")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, session)
	})

	t.Run("Hash password error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("", errors.New("hash error")).Once()

		session, err := svc.Register(ctx, "testuser", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, session)
	})

	t.Run("User already exists", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("hashed", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "existinguser", "hashed").Return(nil, domain.ErrUserExists).Once()

		session, err := svc.Register(ctx, "existinguser", "password123")
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, session)
	})

	t.Run("Database error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("hashed", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, "testuser", "hashed").Return(nil, errors.New("db error")).Once()

		session, err := svc.Register(ctx, "testuser", "password123")
		assert.Error(t, err)
		assert.Nil(t, session)
	})
}

func TestAuthService_Login(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager)
	ctx := context.Background()

	t.Run("Admin receives admin role", func(t *testing.T) {
		user := &domain.User{ID: 9, Login: "root", PasswordHash: "hashed", Role: domain.RoleAdmin}

		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "root").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hashed", "password123").Return(nil).Once()

		session, err := svc.Login(ctx, "root", "password123")
		require.NoError(t, err)

		assert.Equal(t, domain.RoleAdmin, session.Role)

		claims, err := jwtManager.Validate(session.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(9), claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		session, err := svc.Login(ctx, "", "password")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, session)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "nonexistent").Return(nil, domain.ErrUserNotFound).Once()

		session, err := svc.Login(ctx, "nonexistent", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, session)
	})

	t.Run("Wrong password", func(t *testing.T) {
		user := &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashed"}

		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "testuser").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hashed", "wrongpassword").Return(password.ErrMismatch).Once()

		session, err := svc.Login(ctx, "testuser", "wrongpassword")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, session)
	})

	t.Run("Corrupted hash", func(t *testing.T) {
		user := &domain.User{ID: 1, Login: "testuser", PasswordHash: "broken"}

		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "testuser").Return(user, nil).Once()
		mockHasher.EXPECT().Check("broken", "password123").Return(errors.New("bad hash")).Once()

		session, err := svc.Login(ctx, "testuser", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, session)
	})

	t.Run("Database error", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "testuser").Return(nil, errors.New("db error")).Once()

		session, err := svc.Login(ctx, "testuser", "password123")
		assert.Error(t, err)
		assert.Nil(t, session)
	})
}
