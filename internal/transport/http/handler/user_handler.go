package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/internal/service"
	"go-gin-gorm-inventory/internal/transport/http/ez"
)

type UserHandler struct{ svc *service.UserService }

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/user"))

	ez.RegisterAction(e, ez.Action[domain.UserFilter, []service.UserView]{
		Method: http.MethodGet, Path: "", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *domain.UserFilter) ([]service.UserView, error) {
			return h.svc.List(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[none, *service.UserView]{
		Method: http.MethodGet, Path: "/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *none) (*service.UserView, error) {
			return h.svc.GetOne(c.Request.Context(), c.Param("id"))
		},
	})
	ez.RegisterAction(e, ez.Action[service.UserInput, none]{
		Method: http.MethodPost, Path: "", Binder: ez.BindJSON, Status: http.StatusCreated, Empty: true,
		Handler: func(c *gin.Context, in *service.UserInput) (none, error) {
			return none{}, h.svc.Create(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[service.UserUpdateInput, none]{
		Method: http.MethodPut, Path: "/:id", Binder: ez.BindJSON, Status: http.StatusNoContent, Empty: true,
		Handler: func(c *gin.Context, in *service.UserUpdateInput) (none, error) {
			return none{}, h.svc.Update(c.Request.Context(), c.Param("id"), *in)
		},
	})
	ez.RegisterAction(e, byID(http.MethodDelete, "/:id", h.svc.Delete))
	ez.RegisterAction(e, byID(http.MethodPut, "/activate/:id", h.svc.Activate))
	ez.RegisterAction(e, byID(http.MethodPut, "/deactivate/:id", h.svc.Deactivate))
}

// byID 只用路径 id、成功 204 的动作
func byID(method, path string, fn func(ctx context.Context, id string) error) ez.Action[none, none] {
	return ez.Action[none, none]{
		Method: method, Path: path, Binder: ez.BindNone, Status: http.StatusNoContent, Empty: true,
		Handler: func(c *gin.Context, _ *none) (none, error) {
			return none{}, fn(c.Request.Context(), c.Param("id"))
		},
	}
}
