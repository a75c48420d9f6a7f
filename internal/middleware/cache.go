package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ResponseCache is the store behind the analytics response cache.
type ResponseCache interface {
	GetResponse(ctx context.Context, key string) ([]byte, error)
	SetResponse(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

type cachingWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// Cache serves successful GET responses from the store, keyed by the full
// request URI. Store failures fall through to the handler.
func Cache(store ResponseCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.RequestURI
		if body, err := store.GetResponse(c.Request.Context(), key); err == nil {
			c.Header("X-Cache", "HIT")
			c.Header("Cache-Control", "public, max-age="+formatSeconds(ttl))
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &cachingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Header("X-Cache", "MISS")
		c.Next()

		if writer.Status() == http.StatusOK && len(writer.body) > 0 {
			_ = store.SetResponse(c.Request.Context(), key, writer.body, ttl)
		}
	}
}

func formatSeconds(ttl time.Duration) string {
	seconds := int(ttl / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return strconv.Itoa(seconds)
}
