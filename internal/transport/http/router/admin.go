package router

import (
	"github.com/gin-gonic/gin"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/internal/transport/http/handler"
	mdw "go-gin-gorm-inventory/internal/transport/http/middleware"
)

func NewAdminEngine(d Deps, s Services) *gin.Engine {
	r := base(d)

	reg := NewRegistry(handler.NewAdminHandler(s.Users))

	// 管理端 v1（统一要求 SYSTEMADMIN 角色）
	admin := r.Group("/admin/v1", mdw.AuthJWT(d.JWT, string(domain.RoleSystemAdmin)))
	reg.MountAdmin(admin)
	return r
}
