package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the uniform error envelope. Success payloads are endpoint-specific
// shapes and are returned raw; only failures use this envelope.
type Error struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Fail writes an error envelope with the given HTTP status.
func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Error{Code: -1, Msg: msg})
}

// BadRequest is a 400 with a descriptive message.
func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, msg)
}

// Internal is a 500 with a descriptive message.
func Internal(c *gin.Context, msg string) {
	Fail(c, http.StatusInternalServerError, msg)
}
