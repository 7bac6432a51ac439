package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "go-gin-gorm-inventory/internal/transport/http/response"
)

// ConcurrencyLimit 限制同时在处理的请求数（保护 DB 下游）
//
// 等待直到拿到名额或请求被取消（取消时 503）。
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(resp.CodeUnavailable, resp.Error(resp.CodeUnavailable, ""))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
