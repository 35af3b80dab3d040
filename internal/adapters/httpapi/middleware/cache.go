package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yatube/internal/config"
	"yatube/internal/ports/cache"
)

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves repeated requests for the same URI from store. Only
// successful responses are stored; cache failures fall through to the handler.
func CachePage(store cache.PageCache, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := prefix + c.Request.URL.RequestURI()
		ctx := c.Request.Context()

		body, ok, err := store.Get(ctx, key)
		if err != nil {
			config.Logger.Warn("page cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &bodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w
		c.Next()

		if w.Status() != http.StatusOK {
			return
		}
		if err := store.Set(ctx, key, w.body.Bytes()); err != nil {
			config.Logger.Warn("page cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}
