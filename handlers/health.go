package handlers

import (
	"net/http"

	"groupmeet/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest backend health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
