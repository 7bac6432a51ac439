package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-inventory/internal/core/auth"
	resp "go-gin-gorm-inventory/internal/transport/http/response"
)

// gin.Context 上的鉴权键
const (
	KeyClaims = "claims"
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 校验 Bearer token；requireRole 非空时限定角色
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(resp.CodeUnauthorized, resp.Error(resp.CodeUnauthorized, ""))
			return
		}
		claims, err := j.Parse(strings.TrimSpace(strings.TrimPrefix(ah, "Bearer ")))
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(resp.CodeUnauthorized, resp.Error(resp.CodeUnauthorized, ""))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(resp.CodeForbidden, resp.Error(resp.CodeForbidden, ""))
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.Email)
		c.Set(KeyRole, claims.Role)
		ctx := auth.WithActor(c.Request.Context(), auth.Actor{Email: claims.Email, Role: claims.Role})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
