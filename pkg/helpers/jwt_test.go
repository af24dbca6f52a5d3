package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Minute, time.Hour)

	access, exp, err := m.GenerateAccessToken("user-1")
	assert.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestJWTManager_SecretsAreNotInterchangeable(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Minute, time.Hour)

	refresh, _, err := m.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTManager_ExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, time.Hour)

	access, _, err := m.GenerateAccessToken("user-1")
	assert.NoError(t, err)

	_, err = m.ParseAccessToken(access)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, CompareHashAndPassword(hash, "password123"))
	assert.False(t, CompareHashAndPassword(hash, "password124"))
}
