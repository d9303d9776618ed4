package middleware

import (
	"bytes"
	"net/http"

	"room-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const cacheHeader = "X-Cache"

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

type recordingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache keeps successful GET responses for room reads. Room writes
// call Flush so a stale catalogue is never served past a change.
type ResponseCache struct {
	store *cache.Cache
}

func NewResponseCache(cfg config.CacheConfig) *ResponseCache {
	return &ResponseCache{store: cache.New(cfg.RoomsTTL, cfg.CleanupInterval)}
}

func (rc *ResponseCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if v, found := rc.store.Get(key); found {
			cached := v.(cachedResponse)
			for k, vals := range cached.headers {
				c.Writer.Header()[k] = vals
			}
			c.Writer.Header().Set(cacheHeader, "HIT")
			c.Writer.WriteHeader(cached.status)
			_, _ = c.Writer.Write(cached.body)
			c.Abort()
			return
		}

		rw := &recordingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rw
		c.Writer.Header().Set(cacheHeader, "MISS")

		c.Next()

		if status := rw.Status(); status >= 200 && status < 300 && !c.IsAborted() {
			rc.store.SetDefault(key, cachedResponse{
				status:  status,
				headers: rw.Header().Clone(),
				body:    rw.body.Bytes(),
			})
		}
	}
}

func (rc *ResponseCache) Flush() {
	rc.store.Flush()
}
