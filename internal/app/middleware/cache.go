package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/cache"
	"github.com/A-Basit02/Disaster-Management-App/pkg/logger"
)

// CacheKeyPrefix namespaces response entries inside the store
const CacheKeyPrefix = "response:"

// CacheConfig configures the response cache
type CacheConfig struct {
	Expiration time.Duration             // entry lifetime
	Methods    []string                  // methods whose responses are cached
	KeyFunc    func(*gin.Context) string // cache key of a request
}

// DefaultCacheConfig caches GET responses for 30 seconds
var DefaultCacheConfig = CacheConfig{
	Expiration: 30 * time.Second,
	Methods:    []string{http.MethodGet},
	KeyFunc:    defaultKeyFunc,
}

// defaultKeyFunc hashes the path and the sorted query string
func defaultKeyFunc(c *gin.Context) string {
	path := c.Request.URL.Path

	query := c.Request.URL.Query()
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		values := query[key]
		sort.Strings(values)
		for _, value := range values {
			b.WriteString(key + "=" + value + "&")
		}
	}

	sum := md5.Sum([]byte(path + "?" + b.String()))
	return CacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Cache serves 200 responses from the store until they expire or a write
// route purges them.
func Cache(store cache.Store, config ...CacheConfig) gin.HandlerFunc {
	cfg := DefaultCacheConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultCacheConfig.Methods
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}

	return func(c *gin.Context) {
		if !methodCached(cfg.Methods, c.Request.Method) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cfg.KeyFunc(c)

		content, err := store.Get(ctx, key)
		if err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", content)
			c.Abort()
			return
		}
		if !errors.Is(err, cache.ErrMiss) {
			logger.L().Warn("response cache read failed", zap.String("key", key), zap.Error(err))
		}

		c.Header("X-Cache", "MISS")
		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if writer.Status() != http.StatusOK {
			return
		}
		if err := store.Set(ctx, key, writer.body.Bytes(), cfg.Expiration); err != nil {
			logger.L().Warn("response cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// InvalidateCache drops every cached response after a successful write
func InvalidateCache(store cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := store.DeletePrefix(c.Request.Context(), CacheKeyPrefix); err != nil {
			logger.L().Warn("response cache purge failed", zap.Error(err))
		}
	}
}

func methodCached(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

// responseWriter copies the body while writing it through
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
