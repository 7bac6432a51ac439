package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "go-gin-gorm-inventory/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小，超限 413
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			c.AbortWithStatusJSON(resp.CodeTooLarge, resp.Error(resp.CodeTooLarge, ""))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
