package routes

import (
	"net/http"

	"github.com/kirusanth290/portfolio/internal/api/handlers"
	"github.com/kirusanth290/portfolio/web"

	"github.com/gin-gonic/gin"
)

// SetupSiteRoutes configures the rendered pages and static assets
func SetupSiteRoutes(router *gin.Engine, site *handlers.SiteHandler) {
	router.GET("/", site.Home)
	router.GET("/projects", site.Projects)
	router.GET("/contact", site.Contact)
	router.StaticFS("/static", http.FS(web.Static()))
}
