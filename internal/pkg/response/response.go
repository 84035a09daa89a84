package response

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
)

// Error responses carry a human-readable "detail" string, matching the
// contract the admin frontend consumes.

// OK sends a 200 response. Arrays/slices are sent as bare JSON arrays.
func OK(c *gin.Context, data interface{}) {
	if data != nil {
		v := reflect.ValueOf(data)
		if v.Kind() == reflect.Slice && v.IsNil() {
			c.JSON(http.StatusOK, []interface{}{})
			return
		}
	}
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, detail string) {
	abortWithDetail(c, http.StatusBadRequest, detail)
}

// Unauthorized sends a 401 error response with a WWW-Authenticate header.
func Unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	abortWithDetail(c, http.StatusUnauthorized, detail)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, detail string) {
	abortWithDetail(c, http.StatusNotFound, detail)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, detail string) {
	abortWithDetail(c, http.StatusConflict, detail)
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	abortWithDetail(c, http.StatusMethodNotAllowed, "method not allowed")
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, err error) {
	abortWithDetail(c, http.StatusInternalServerError, err.Error())
}

func abortWithDetail(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, gin.H{"ok": 0, "code": code, "detail": detail})
}
