//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	t.Run("アクセストークン発行と検証", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleStudent)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "MAHASISWA", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("リフレッシュトークンの種別", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("期限切れNG", func(t *testing.T) {
		expired := jwt.NewService("secret", -time.Minute, -time.Minute)
		token, err := expired.GenerateAccessToken(userID, user.RoleStudent)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("署名鍵違いNG", func(t *testing.T) {
		other := jwt.NewService("other", time.Minute, time.Minute)
		token, err := other.GenerateAccessToken(userID, user.RoleStudent)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
