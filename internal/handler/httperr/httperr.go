package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire envelope for failed calls:
// {"success": false, "error": "<message>"} with a non-2xx status.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Success: false, Error: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
