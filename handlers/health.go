package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHealthcheck registers the API-level health endpoint.
func RegisterHealthcheck(r *gin.Engine) {
	r.GET("/api/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "content-api is up"})
	})
}
