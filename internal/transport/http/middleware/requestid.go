package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-gin-gorm-inventory/internal/core/logger"
)

const KeyRequestID = "X-Request-ID"

// RequestID 透传或生成请求 ID，同时写入 request context 供 gorm 日志使用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), rid))
		c.Next()
	}
}
