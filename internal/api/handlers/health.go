package handlers

import (
	"net/http"

	"github.com/kirusanth290/portfolio/internal/api/dto/common"
	"github.com/kirusanth290/portfolio/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:  "ok",
		Version: version.Version,
	})
}
