package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform top-level shape of every error response:
// {success:false, error:<code>, message:<string>}. Success responses
// carry success:true plus endpoint-specific fields and are built with OK.
type Envelope struct {
	Success bool    `json:"success"`
	Error   ErrCode `json:"error"`
	Message string  `json:"message"`
}

// OK sends a 200 success envelope carrying the given payload fields.
func OK(c *gin.Context, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(http.StatusOK, payload)
}

// Fail sends an error envelope. The error code doubles as the HTTP status.
func Fail(c *gin.Context, code ErrCode) {
	c.JSON(int(code), Envelope{
		Success: false,
		Error:   code,
		Message: Message(code),
	})
}

// AbortFail aborts the middleware chain and sends an error envelope.
func AbortFail(c *gin.Context, code ErrCode) {
	c.AbortWithStatusJSON(int(code), Envelope{
		Success: false,
		Error:   code,
		Message: Message(code),
	})
}
