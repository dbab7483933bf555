package http

import (
	"net/http"

	"takhub/internal/config"

	"github.com/gin-gonic/gin"
)

// @Summary Get server configuration
// @Description Returns the effective server defaults (address, board size)
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config [get]
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"config": cfg})
	}
}
