package handlers

import (
	"github.com/kirusanth290/portfolio/internal/api/dto/common"
	contactdto "github.com/kirusanth290/portfolio/internal/api/dto/v1/contact"
	"github.com/kirusanth290/portfolio/internal/contact"
	"github.com/kirusanth290/portfolio/internal/logging"
	"github.com/kirusanth290/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service *contact.Service
	logger  *logging.Logger
}

func NewContactHandler(service *contact.Service, logger *logging.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger,
	}
}

// Submit relays one contact form submission. The raw body goes to the
// service untouched so that parse failures map to "Invalid request".
func (h *ContactHandler) Submit(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		utils.HandleAPIError(c, h.logger, err, contact.InvalidRequest.Status(), contact.InvalidRequest.Message())
		return
	}

	outcome := h.service.Submit(c.Request.Context(), raw)
	if !outcome.OK() {
		c.JSON(outcome.Status(), common.NewErrorResponse(outcome.Message()))
		return
	}

	utils.HandleSuccess(c, contactdto.ContactResponse{
		Success: true,
		Message: outcome.Message(),
	})
}
