package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the standard success envelope.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes the standard error envelope.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONRuleRejection writes a rule-rejection envelope carrying the
// severity and recovery suggestions alongside the message.
func JSONRuleRejection(c *gin.Context, code int, message string, severity string, suggestions []string) {
	c.JSON(code, gin.H{
		"success":     false,
		"error":       message,
		"severity":    severity,
		"suggestions": suggestions,
	})
}
