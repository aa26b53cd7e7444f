package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func write(c *gin.Context, code int, extras any) {
	c.JSON(code, Response{
		Success: code < http.StatusBadRequest,
		Code:    code,
		Extras:  extras,
	})
}

// SuccessResponse answers 200 with extras as the payload.
func SuccessResponse(c *gin.Context, extras any) {
	write(c, http.StatusOK, extras)
}

// ErrorResponse answers code with a {"message": ...} payload.
func ErrorResponse(c *gin.Context, code int, message string) {
	write(c, code, gin.H{"message": message})
}

// FailResponse answers err with the status code StatusFor picks.
func FailResponse(c *gin.Context, err error) {
	ErrorResponse(c, StatusFor(err), err.Error())
}

// AbortWithError answers code and stops the handler chain.
func AbortWithError(c *gin.Context, code int, message string) {
	ErrorResponse(c, code, message)
	c.Abort()
}
