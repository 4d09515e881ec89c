package utils

import "github.com/gin-gonic/gin"

const internalErrorMessage = "Internal Server Error"

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONInternalError never leaks the cause; it is logged by the caller.
func JSONInternalError(c *gin.Context, code int) {
	c.JSON(code, gin.H{"error": internalErrorMessage})
}
