package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/internal/service"
	"go-gin-gorm-inventory/internal/transport/http/ez"
)

type ItemHandler struct{ svc *service.ItemService }

func NewItemHandler(svc *service.ItemService) *ItemHandler { return &ItemHandler{svc: svc} }

func (h *ItemHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/item"))

	ez.RegisterAction(e, ez.Action[domain.ItemFilter, []service.ItemView]{
		Method: http.MethodGet, Path: "", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *domain.ItemFilter) ([]service.ItemView, error) {
			return h.svc.List(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[none, *service.ItemView]{
		Method: http.MethodGet, Path: "/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *none) (*service.ItemView, error) {
			return h.svc.GetOne(c.Request.Context(), c.Param("id"))
		},
	})
	ez.RegisterAction(e, ez.Action[service.ItemInput, none]{
		Method: http.MethodPost, Path: "", Binder: ez.BindJSON, Status: http.StatusCreated, Empty: true,
		Handler: func(c *gin.Context, in *service.ItemInput) (none, error) {
			return none{}, h.svc.Create(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[service.ItemInput, none]{
		Method: http.MethodPut, Path: "/:id", Binder: ez.BindJSON, Status: http.StatusNoContent, Empty: true,
		Handler: func(c *gin.Context, in *service.ItemInput) (none, error) {
			return none{}, h.svc.Update(c.Request.Context(), c.Param("id"), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[none, none]{
		Method: http.MethodDelete, Path: "/:id", Binder: ez.BindNone, Status: http.StatusNoContent, Empty: true,
		Handler: func(c *gin.Context, _ *none) (none, error) {
			return none{}, h.svc.Delete(c.Request.Context(), c.Param("id"))
		},
	})
}
