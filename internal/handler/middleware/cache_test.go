//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"
	"room-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResponseCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() (*gin.Engine, *middleware.ResponseCache, *int) {
		calls := 0
		rc := middleware.NewResponseCache(config.CacheConfig{RoomsTTL: time.Minute, CleanupInterval: time.Minute})
		r := gin.New()
		r.GET("/rooms", rc.Handler(), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusOK, gin.H{"calls": calls})
		})
		r.GET("/missing", rc.Handler(), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "nope"}})
		})
		return r, rc, &calls
	}

	t.Run("二回目はキャッシュから返す", func(t *testing.T) {
		r, _, calls := newRouter()

		first := httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")
		second := httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")

		assert.Equal(t, 1, *calls)
		assert.Equal(t, first.Body.String(), second.Body.String())
		httptest.AssertHeaders(t, first, map[string]string{"X-Cache": "MISS"})
		httptest.AssertHeaders(t, second, map[string]string{"X-Cache": "HIT", "Content-Type": "application/json; charset=utf-8"})
	})

	t.Run("クエリが違えば別エントリ", func(t *testing.T) {
		r, _, calls := newRouter()

		httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")
		httptest.PerformRequest(t, r, http.MethodGet, "/rooms?active=true", nil, "")

		assert.Equal(t, 2, *calls)
	})

	t.Run("Flush後は再取得", func(t *testing.T) {
		r, rc, calls := newRouter()

		httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")
		rc.Flush()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")

		assert.Equal(t, 2, *calls)
		assert.JSONEq(t, `{"calls":2}`, rec.Body.String())
	})

	t.Run("エラー応答はキャッシュしない", func(t *testing.T) {
		r, _, calls := newRouter()

		httptest.PerformRequest(t, r, http.MethodGet, "/missing", nil, "")
		httptest.PerformRequest(t, r, http.MethodGet, "/missing", nil, "")

		assert.Equal(t, 2, *calls)
	})
}
