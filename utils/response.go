package utils

import (
	"aquavalle-backend/services"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// RespondAppError maps a service error onto the wire: known AppErrors keep
// their code, status and details; anything else becomes a 500 store error.
func RespondAppError(c *gin.Context, err error) {
	appErr := services.AsAppError(err)
	c.JSON(appErr.HTTPStatus, gin.H{
		"success": false,
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		},
	})
}
