package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kirusanth290/portfolio/internal/api/handlers"
	"github.com/kirusanth290/portfolio/internal/api/middleware"
	"github.com/kirusanth290/portfolio/internal/config"
	"github.com/kirusanth290/portfolio/internal/contact"
	"github.com/kirusanth290/portfolio/internal/logging"
	"github.com/kirusanth290/portfolio/internal/server/routes"
	"github.com/kirusanth290/portfolio/internal/site"
	"github.com/kirusanth290/portfolio/web"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// ServiceName identifies the server in traces
const ServiceName = "portfolio"

// ContactEndpoint is where the contact page posts submissions
const ContactEndpoint = "/api/contact"

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	logger     *logging.Logger
}

// NewServer builds the router with every route and middleware attached
func NewServer(cfg *config.Config, service *contact.Service, logger *logging.Logger) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		// Request lines go through our own logger
		gin.DefaultWriter = io.Discard
	}

	router := gin.New()
	router.Use(otelgin.Middleware(ServiceName))

	tmpl, err := web.Templates(template.FuncMap{"lower": strings.ToLower})
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	m := &routes.Middleware{
		Logger:       logger,
		CORS:         corsConfig(cfg),
		MaxBodyBytes: cfg.ContactMaxBodyBytes,
	}
	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(service, logger),
		Health:  handlers.NewHealthHandler(),
		Site:    handlers.NewSiteHandler(site.Default(), ContactEndpoint),
	}

	routes.SetupGlobalMiddleware(router, m)
	routes.Setup(router, h, m)

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// corsConfig lets the site's own origin through whenever an explicit list is set
func corsConfig(cfg *config.Config) middleware.CORSConfig {
	origins := cfg.Origins()
	if len(origins) > 0 && cfg.SiteURL != "" {
		origins = append(origins, strings.TrimSuffix(cfg.SiteURL, "/"))
	}
	return middleware.CORSConfig{
		AllowedOrigins: origins,
		Permissive:     !cfg.IsProduction(),
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("Starting server on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
