package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-gin-gorm-inventory/internal/core/auth"
	"go-gin-gorm-inventory/internal/core/config"
	"go-gin-gorm-inventory/internal/core/server"
	"go-gin-gorm-inventory/internal/service"
	"go-gin-gorm-inventory/internal/transport/http/handler"
	mdw "go-gin-gorm-inventory/internal/transport/http/middleware"
)

// Services engine 需要的业务服务
type Services struct {
	Categories *service.CategoryService
	Items      *service.ItemService
	Suppliers  *service.SupplierService
	Users      *service.UserService
	Auth       *service.AuthService
}

type Deps struct {
	Log      *zap.Logger
	JWT      *auth.JWTer
	Limits   config.Limits
	BasePath string
	// Metrics 为空时使用独立 registry
	Metrics *prometheus.Registry
}

// NewMetricsRegistry 带 Go 运行时与进程指标的 registry
func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (d Deps) registry() *prometheus.Registry {
	if d.Metrics != nil {
		return d.Metrics
	}
	return prometheus.NewRegistry()
}

// base 两个 engine 共用的中间件链、/health 与 /metrics
//
// Limits 中为 0 的项不启用对应中间件。
func base(d Deps) *gin.Engine {
	reg := d.registry()
	r := server.NewRouter(d.Log)
	r.Use(mdw.RequestID(), mdw.AccessLog(d.Log), mdw.Metrics(reg))

	lim := d.Limits
	if lim.RPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(lim.RPS), max(lim.Burst, 1)))
	}
	if lim.MaxConcurrent > 0 {
		r.Use(mdw.ConcurrencyLimit(lim.MaxConcurrent))
	}
	if lim.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(lim.MaxBodyBytes))
	}
	if lim.RequestTimeoutSec > 0 {
		r.Use(mdw.Timeout(time.Duration(lim.RequestTimeoutSec) * time.Second))
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	return r
}

func NewAPIEngine(d Deps, s Services) *gin.Engine {
	r := base(d)

	var loginLimit gin.HandlerFunc
	if d.Limits.LoginRPS > 0 {
		loginLimit = mdw.RateLimitPerIP(rate.Limit(d.Limits.LoginRPS), max(d.Limits.LoginBurst, 1))
	}
	reg := NewRegistry(
		handler.NewAuthHandler(s.Auth, loginLimit),
		handler.NewCategoryHandler(s.Categories),
		handler.NewItemHandler(s.Items),
		handler.NewSupplierHandler(s.Suppliers),
		handler.NewUserHandler(s.Users),
	)

	api := r.Group(d.BasePath)
	reg.MountPublic(api)

	// 鉴权分组
	authed := api.Group("", mdw.AuthJWT(d.JWT, ""))
	reg.MountAPI(authed)
	return r
}
