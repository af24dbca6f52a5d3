package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medtrack/patient-service/internal/domain/entity"
	"github.com/medtrack/patient-service/pkg/helpers"
)

func newTestAuthService(users *MockUserRepository) *AuthService {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthService(users, jwt, nil, newTestLogger())
}

func seededUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	assert.NoError(t, err)
	return &entity.User{
		ID:       "b4f9a7c2-6e13-4d58-8f20-3cd6e1a97606",
		Email:    "frontdesk@example.com",
		Password: hash,
		Name:     "Front Desk",
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	u := seededUser(t, "password123")
	users := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == u.Email {
				return u, nil
			}
			return nil, nil
		},
	}
	svc := newTestAuthService(users)

	res, pair, err := svc.Login(context.Background(), u.Email, "password123")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, res.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessTokenExpiry.After(time.Now()))

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	u := seededUser(t, "password123")
	users := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return u, nil
		},
	}
	svc := newTestAuthService(users)

	_, _, err := svc.Login(context.Background(), u.Email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
	}
	svc := newTestAuthService(users)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	u := seededUser(t, "password123")
	users := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
			if id == u.ID {
				return u, nil
			}
			return nil, nil
		},
	}
	svc := newTestAuthService(users)

	refresh, _, err := svc.JWT.GenerateRefreshToken(u.ID)
	assert.NoError(t, err)

	pair, userID, err := svc.Refresh(context.Background(), refresh)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	u := seededUser(t, "password123")
	svc := newTestAuthService(&MockUserRepository{})

	// an access token is signed with a different secret and must not refresh
	access, _, err := svc.JWT.GenerateAccessToken(u.ID)
	assert.NoError(t, err)

	_, _, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
