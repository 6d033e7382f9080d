package response

import "github.com/gin-gonic/gin"

// Success sends a 200 response with the payload merged into a
// {"success": true} envelope
func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(200, body)
}

// Error sends an error response with a {"success": false} envelope
func Error(c *gin.Context, code int, message string) {
	ErrorWith(c, code, message, nil)
}

// ErrorWith sends an error response carrying extra fields alongside the
// error message (e.g. the list of available airports on a 404)
func ErrorWith(c *gin.Context, code int, message string, extra gin.H) {
	body := gin.H{"success": false, "error": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}
