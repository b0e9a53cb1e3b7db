package routes

import (
	"github.com/kirusanth290/portfolio/internal/api/handlers"
	"github.com/kirusanth290/portfolio/internal/api/middleware"
	"github.com/kirusanth290/portfolio/internal/logging"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
	Site    *handlers.SiteHandler
}

// Middleware contains the settings shared by route-level middleware
type Middleware struct {
	Logger       *logging.Logger
	CORS         middleware.CORSConfig
	MaxBodyBytes int64
}
