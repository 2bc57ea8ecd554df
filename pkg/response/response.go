// Package response holds the JSON envelope every handler speaks:
// {"success": true, "data"/"message": ...} on the happy path and
// {"success": false, "message": ...} on errors, with the status code
// derived from the error's taxonomy code.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumitdoescode/Clicks/pkg/errors"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func Fail(c *gin.Context, err error) {
	c.JSON(errors.HTTPStatus(err), gin.H{"success": false, "message": errors.PublicMessage(err)})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
}
