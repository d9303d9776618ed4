//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service, roles ...user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(svc)

	r := gin.New()
	chain := []gin.HandlerFunc{m.RequireAuth()}
	if len(roles) > 0 {
		chain = append(chain, m.RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID.String(), "admin": actor.IsAdmin})
	})
	r.GET("/protected", chain...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewService("test-secret-key-for-testing-only", 15*time.Minute, time.Hour)
	userID := uuid.New()

	t.Run("アクセストークンで認証成功", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleStudent)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, newAuthRouter(svc), http.MethodGet, "/protected", nil, token)

		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, false, body["admin"])
	})

	t.Run("トークンなしは401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newAuthRouter(svc), http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("リフレッシュトークンはアクセスに使えない", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleStudent)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, newAuthRouter(svc), http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("別の鍵で署名されたトークンは401", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, newAuthRouter(svc), http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("ADMIN限定ルートに学生は403", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleStudent)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, newAuthRouter(svc, user.RoleAdmin), http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("ADMIN限定ルートに管理者は通過", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, newAuthRouter(svc, user.RoleAdmin), http.MethodGet, "/protected", nil, token)

		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, true, body["admin"])
	})
}
