package routes

import (
	"github.com/kirusanth290/portfolio/internal/api/handlers"
	"github.com/kirusanth290/portfolio/internal/api/middleware"
	"github.com/kirusanth290/portfolio/internal/contact"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the contact form endpoint
func SetupContactRoutes(router *gin.RouterGroup, h *handlers.ContactHandler, m *Middleware) {
	// Anything that escapes the handler is reported as a malformed request
	router.POST("/contact",
		middleware.Recovery(m.Logger, contact.InvalidRequest.Status(), contact.InvalidRequest.Message()),
		middleware.BodyLimit(m.MaxBodyBytes),
		h.Submit,
	)
}
