package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalError records err on the context for the request logger and sends a
// generic message; raw store errors never reach the client
func internalError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}
