// Package devserver serves a built page and its Wasm module during development.
package devserver

import (
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hack-pad/canvastap/internal/useragent"
	"github.com/kataras/golog"
)

const wasmContentType = "application/wasm"

func New(cfg Config, logger *golog.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), accessLog(logger), headers(cfg))

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	files := http.FileServer(http.Dir(cfg.Dir))
	engine.NoRoute(gin.WrapH(files))
	return engine
}

func headers(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.NoCache {
			c.Header("Cache-Control", "no-cache")
		}
		if path.Ext(c.Request.URL.Path) == ".wasm" {
			c.Header("Content-Type", wasmContentType)
		}
		c.Next()
	}
}

func accessLog(logger *golog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		device := useragent.Parse(c.Request.UserAgent())
		logger.Infof("%s %s %d %s %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), device)
	}
}
