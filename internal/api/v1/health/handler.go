package health

import (
	"net/http"

	"promptlab-backend/config"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Check reports the API status and version.
func Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: config.Version,
	})
}
