// Package cookie carries the session tokens as HttpOnly cookies. The refresh
// token is scoped to the auth routes so it never travels with reservation calls.
package cookie

import (
	"net/http"
	"time"

	"room-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	accessPath  = "/"
	refreshPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	write(c, cfg, AccessTokenCookieName, accessToken, accessPath, accessExpiry)
	write(c, cfg, RefreshTokenCookieName, refreshToken, refreshPath, refreshExpiry)
}

// ClearTokenCookies expires both cookies on the paths they were issued for.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, AccessTokenCookieName, "", accessPath, -time.Second)
	write(c, cfg, RefreshTokenCookieName, "", refreshPath, -time.Second)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, name, value, path string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	})
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
