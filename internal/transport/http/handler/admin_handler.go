package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/internal/service"
	"go-gin-gorm-inventory/internal/transport/http/ez"
)

// AdminHandler 管理端：用户总览（含已删除）与凭据重置
type AdminHandler struct{ users *service.UserService }

func NewAdminHandler(users *service.UserService) *AdminHandler { return &AdminHandler{users: users} }

type passwordIn struct {
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func (h *AdminHandler) MountAdmin(g *gin.RouterGroup) {
	e := ez.New(g)
	admin := []string{string(domain.RoleSystemAdmin)}

	ez.RegisterAction(e, ez.Action[domain.UserFilter, []service.UserView]{
		Method: http.MethodGet, Path: "/users", Binder: ez.BindQuery, Roles: admin,
		Handler: func(c *gin.Context, in *domain.UserFilter) ([]service.UserView, error) {
			in.IncludeDeleted = true
			return h.users.List(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[passwordIn, none]{
		Method: http.MethodPut, Path: "/users/:id/password", Binder: ez.BindJSON, Roles: admin,
		Status: http.StatusNoContent, Empty: true,
		Handler: func(c *gin.Context, in *passwordIn) (none, error) {
			return none{}, h.users.SetPassword(c.Request.Context(), c.Param("id"), in.Password)
		},
	})
}
