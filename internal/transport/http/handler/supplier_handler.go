package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/internal/service"
	"go-gin-gorm-inventory/internal/transport/http/ez"
)

type SupplierHandler struct{ svc *service.SupplierService }

func NewSupplierHandler(svc *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

func (h *SupplierHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/supplier"))

	ez.RegisterAction(e, ez.Action[domain.PageList, []service.SupplierView]{
		Method: http.MethodGet, Path: "", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *domain.PageList) ([]service.SupplierView, error) {
			return h.svc.List(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[none, *service.SupplierView]{
		Method: http.MethodGet, Path: "/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *none) (*service.SupplierView, error) {
			return h.svc.GetOne(c.Request.Context(), c.Param("id"))
		},
	})
	ez.RegisterAction(e, ez.Action[service.SupplierInput, none]{
		Method: http.MethodPost, Path: "", Binder: ez.BindJSON, Status: http.StatusCreated, Empty: true,
		Handler: func(c *gin.Context, in *service.SupplierInput) (none, error) {
			return none{}, h.svc.Create(c.Request.Context(), *in)
		},
	})
	ez.RegisterAction(e, ez.Action[service.SupplierInput, none]{
		Method: http.MethodPut, Path: "/:id", Binder: ez.BindJSON, Status: http.StatusNoContent, Empty: true,
		Handler: func(c *gin.Context, in *service.SupplierInput) (none, error) {
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
