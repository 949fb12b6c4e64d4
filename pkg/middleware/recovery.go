package middleware

import (
	"net/http"

	"itinera/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the generic 500 body clients expect.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Error"})
	})
}
