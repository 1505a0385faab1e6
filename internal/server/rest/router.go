// Package rest exposes the fixture server's HTTP API: login, current user,
// and the paginated product catalog. The wire shapes mirror what the
// client expects from the public demo service.
package rest

import (
	"github.com/gin-gonic/gin"

	"storedash/internal/logging"
	"storedash/internal/server/config"
	"storedash/internal/server/store"
)

// NewRouter wires handlers and middleware into a gin engine.
func NewRouter(cfg *config.Config, st *store.Store, log logging.Logger) *gin.Engine {
	h := &Handlers{cfg: cfg, store: st, log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	r.POST("/auth/login", h.Login)

	authed := r.Group("/auth")
	authed.Use(BearerAuth([]byte(cfg.SecretKey)))
	{
		authed.GET("/me", h.Me)
	}

	r.GET("/products", h.Products)

	return r
}
