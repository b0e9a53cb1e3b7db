package handlers

import (
	"net/http"
	"time"

	"github.com/kirusanth290/portfolio/internal/site"

	"github.com/gin-gonic/gin"
)

// SiteHandler renders the portfolio pages
type SiteHandler struct {
	content  site.Content
	endpoint string
}

// NewSiteHandler creates a handler whose contact page posts to endpoint
func NewSiteHandler(content site.Content, endpoint string) *SiteHandler {
	return &SiteHandler{
		content:  content,
		endpoint: endpoint,
	}
}

func (h *SiteHandler) Home(c *gin.Context) {
	h.render(c, "home.html", h.content.Person.Name)
}

func (h *SiteHandler) Projects(c *gin.Context) {
	h.render(c, "projects.html", "Projects")
}

func (h *SiteHandler) Contact(c *gin.Context) {
	h.render(c, "contact.html", "Contact")
}

func (h *SiteHandler) render(c *gin.Context, page, title string) {
	c.HTML(http.StatusOK, page, gin.H{
		"Title":    title,
		"Content":  h.content,
		"Year":     time.Now().Year(),
		"Endpoint": h.endpoint,
	})
}
