package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-inventory/internal/service"
	"go-gin-gorm-inventory/internal/transport/http/ez"
)

// AuthHandler 公共登录接口，不经过 JWT 校验
type AuthHandler struct {
	svc     *service.AuthService
	limiter gin.HandlerFunc
}

// NewAuthHandler limiter 可为 nil
func NewAuthHandler(svc *service.AuthService, limiter gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{svc: svc, limiter: limiter}
}

func (h *AuthHandler) Priority() int { return 10 }

func (h *AuthHandler) MountPublic(g *gin.RouterGroup) {
	var mw []gin.HandlerFunc
	if h.limiter != nil {
		mw = append(mw, h.limiter)
	}
	e := ez.New(g.Group("", mw...))

	ez.RegisterAction(e, ez.Action[service.LoginInput, service.LoginResult]{
		Method: http.MethodPost, Path: "/login", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.LoginInput) (service.LoginResult, error) {
			return h.svc.Login(c.Request.Context(), in.Email, in.Password)
		},
	})
}
