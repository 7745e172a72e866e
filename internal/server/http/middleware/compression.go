package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/reservashop/internal/server/http/dto"
)

// maxInflatedBody caps a decompressed request body.
const maxInflatedBody = 1 << 20

// DecompressRequest inflates gzip encoded request bodies before binding.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(c.GetHeader("Content-Encoding"))
		if !strings.Contains(encoding, "gzip") {
			c.Next()
			return
		}

		compressed := c.Request.Body
		defer compressed.Close()

		inflated, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed gzip body"})
			return
		}
		defer inflated.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, io.NopCloser(inflated), maxInflatedBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
