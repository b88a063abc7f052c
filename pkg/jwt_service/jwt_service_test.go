package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
	jwtservice "github.com/limbo/studyos/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &entity.User{
	ID:    uuid.New(),
	Email: "student@example.com",
	Name:  "Student",
	Role:  entity.RoleStudent,
}

func TestGenerateAndParse(t *testing.T) {
	s := jwtservice.New("secret", time.Minute, time.Hour)
	pair, err := s.GenerateTokenPair(testUser)
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)

	claims, err := s.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID.String(), claims.UserID)
	assert.Equal(t, testUser.Email, claims.Email)
	assert.Equal(t, entity.RoleStudent, claims.Role)
	assert.Equal(t, jwtservice.TypeAccess, claims.TokenType)

	claims, err = s.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jwtservice.TypeRefresh, claims.TokenType)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(50*time.Minute)))
}

func TestParseInvalid(t *testing.T) {
	s := jwtservice.New("secret", time.Minute, time.Hour)
	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not-a-token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("other secret", func(t *testing.T) {
		token, err := jwtservice.New("other", time.Minute, time.Hour).GenerateToken(testUser, jwtservice.TypeAccess)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		expiring := jwtservice.New("secret", time.Nanosecond, time.Hour)
		token, err := expiring.GenerateToken(testUser, jwtservice.TypeAccess)
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}

func TestRefresh(t *testing.T) {
	s := jwtservice.New("secret", time.Minute, time.Hour)
	pair, err := s.GenerateTokenPair(testUser)
	require.NoError(t, err)
	t.Run("success", func(t *testing.T) {
		access, err := s.Refresh(pair.RefreshToken)
		require.NoError(t, err)
		claims, err := s.ParseToken(access)
		require.NoError(t, err)
		assert.Equal(t, jwtservice.TypeAccess, claims.TokenType)
		assert.Equal(t, testUser.ID.String(), claims.UserID)
	})
	t.Run("access token rejected", func(t *testing.T) {
		_, err := s.Refresh(pair.AccessToken)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTokenType)
	})
	t.Run("invalid token", func(t *testing.T) {
		_, err := s.Refresh("abc")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
