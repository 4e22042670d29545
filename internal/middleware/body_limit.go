package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps the request body at n bytes. Reads past the cap fail
// with *http.MaxBytesError.
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if n > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// UploadBodyLimit is the body cap for routes carrying one photo of at most
// maxUpload bytes, either raw in a multipart form or base64 in JSON.
func UploadBodyLimit(maxUpload int64) int64 {
	return maxUpload*4/3 + 64<<10
}
