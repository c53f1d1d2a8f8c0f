// Package callable implements the request/response envelope of callable
// functions: the request body is {"data": ...}, a success is {"result": ...}
// and a failure is {"error": {"status": ..., "message": ...}}.
package callable

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Code is the error kind surfaced to callable clients.
type Code string

const (
	InvalidArgument Code = "invalid-argument"
	NotFound        Code = "not-found"
	Internal        Code = "internal"
)

// Status returns the wire form of the code, e.g. "INVALID_ARGUMENT".
func (c Code) Status() string {
	return strings.ToUpper(strings.ReplaceAll(string(c), "-", "_"))
}

// HTTPStatus maps the code onto the response status.
func (c Code) HTTPStatus() int {
	switch c {
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a tagged error returned by callable operations. Only Code and
// Message reach the client.
type Error struct {
	Code    Code
	Message string
}

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// AsError extracts a tagged error from err. Untagged errors become a generic
// internal error so their details are not exposed.
func AsError(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return NewError(Internal, "INTERNAL")
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handle adapts fn to a gin handler speaking the callable envelope.
func Handle[Req any, Resp any](fn func(ctx context.Context, req Req) (Resp, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			WriteError(c, NewError(InvalidArgument, "Bad Request"))
			return
		}
		var in envelope[Req]
		if err := c.ShouldBindJSON(&in); err != nil {
			WriteError(c, NewError(InvalidArgument, "Bad Request"))
			return
		}
		out, err := fn(c.Request.Context(), in.Data)
		if err != nil {
			WriteError(c, AsError(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": out})
	}
}

func WriteError(c *gin.Context, e *Error) {
	c.AbortWithStatusJSON(e.Code.HTTPStatus(), gin.H{"error": errorBody{Status: e.Code.Status(), Message: e.Message}})
}
