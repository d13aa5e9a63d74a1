// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tollcents/internal/http/handlers"
	"tollcents/internal/http/middleware"
)

type RouterDeps struct {
	Planner  handlers.Planner
	Codes    middleware.CodeValidator
	Limiter  middleware.Limiter
	MockAPIs bool
	Log      *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	if deps.Limiter != nil {
		r.Use(middleware.RateLimit(deps.Limiter))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	accessHandler := handlers.NewAccessHandler(deps.Codes)
	r.GET("/api/access-code/validate", accessHandler.Validate)

	travelHandler := handlers.NewTravelHandler(deps.Planner, deps.MockAPIs)
	guarded := r.Group("/api", middleware.Auth(deps.Codes))
	guarded.GET("/route-information", travelHandler.Get)

	return r
}
