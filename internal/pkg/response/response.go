package response

import "github.com/gin-gonic/gin"

// Error writes the error body used across the API: {"detail": message}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}

// ValidationError carries field-level validation failures.
func ValidationError(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.JSON(statusCode, gin.H{
		"detail": message,
		"fields": fields,
	})
}
