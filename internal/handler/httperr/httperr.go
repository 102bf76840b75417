package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure envelope of the wire contract: every non-2xx
// body is {"success": false, "message": "..."}.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Success: false, Message: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
