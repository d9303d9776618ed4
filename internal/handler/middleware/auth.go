package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/cookie"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken = errs.NewKind("access token required", errs.ErrUnauthenticated)
	errBadToken     = errs.NewKind("invalid or expired token", errs.ErrUnauthenticated)
	errRoleDenied   = errs.NewKind("role not permitted", errs.ErrForbidden)
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil || claims.TokenType != jwt.TokenTypeAccess {
			if err == nil {
				err = errBadToken
			}
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errBadToken, "Invalid or expired token", nil)
			return
		}

		role, err := user.NewRole(claims.Role)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errBadToken, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("role missing from context"), "Internal server error", nil)
			return
		}

		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.AbortWithError(c, http.StatusForbidden, errRoleDenied, "Insufficient permissions", nil)
	}
}

func bearerOrCookie(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor combines the authenticated id and role into a lifecycle actor.
func GetActor(c *gin.Context) (reservation.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return reservation.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return reservation.Actor{}, false
	}
	return reservation.Actor{UserID: id, IsAdmin: role == user.RoleAdmin}, true
}
