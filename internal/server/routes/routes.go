package routes

import (
	"net/http"

	"github.com/kirusanth290/portfolio/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")
	SetupContactRoutes(api, h.Contact, m)

	SetupSiteRoutes(router, h.Site)

	m.Logger.Debug("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes.
// It runs for unmatched routes too, which is where CORS preflights land.
func SetupGlobalMiddleware(router *gin.Engine, m *Middleware) {
	router.Use(middleware.Recovery(m.Logger, http.StatusInternalServerError, "Internal server error"))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(m.Logger))
	router.Use(middleware.CORS(m.CORS))
	router.Use(middleware.SecurityHeaders())
}
