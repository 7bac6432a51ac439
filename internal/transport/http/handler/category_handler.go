package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/internal/service"
	"go-gin-gorm-inventory/internal/transport/http/ez"
)

type none = struct{}

type CategoryHandler struct{ svc *service.CategoryService }

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/category"))

	ez.RegisterAction(e, ez.Action[domain.PageList, []service.CategoryView]{
		Method: http.MethodGet, Path: "", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *domain.PageList) ([]service.CategoryView, error) {
			return h.svc.List(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[none, *service.CategoryView]{
		Method: http.MethodGet, Path: "/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *none) (*service.CategoryView, error) {
			return h.svc.GetOne(c.Request.Context(), c.Param("id"))
		},
	})
	ez.RegisterAction(e, ez.Action[service.CategoryInput, none]{
		Method: http.MethodPost, Path: "", Binder: ez.BindJSON, Status: http.StatusCreated, Empty: true,
		Handler: func(c *gin.Context, in *service.CategoryInput) (none, error) {
			return none{}, h.svc.Create(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[service.CategoryInput, none]{
		Method: http.MethodPut, Path: "/:id", Binder: ez.BindJSON, Status: http.StatusNoContent, Empty: true,
		Handler: func(c *gin.Context, in *service.CategoryInput) (none, error) {
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
