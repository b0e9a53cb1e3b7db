package utils

import (
	"github.com/kirusanth290/portfolio/internal/api/dto/common"
	"github.com/kirusanth290/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs a failed request and writes {"error": message}.
// Internal error details never reach the response body.
func HandleAPIError(c *gin.Context, logger *logging.Logger, err error, status int, message string) {
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(message))
}
