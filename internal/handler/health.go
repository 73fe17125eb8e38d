package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers liveness probes with a plain "Ok".
func Health(c *gin.Context) {
	c.String(http.StatusOK, "Ok")
}
