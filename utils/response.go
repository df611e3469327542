package utils

import "github.com/gin-gonic/gin"

// JSONDetailError writes the error body shape the clients read: a single
// human-readable "detail" field.
func JSONDetailError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"detail": message})
}
