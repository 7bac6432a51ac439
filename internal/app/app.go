package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-gin-gorm-inventory/internal/core/auth"
	"go-gin-gorm-inventory/internal/core/cache"
	"go-gin-gorm-inventory/internal/core/config"
	"go-gin-gorm-inventory/internal/core/database"
	"go-gin-gorm-inventory/internal/repo"
	"go-gin-gorm-inventory/internal/service"
	"go-gin-gorm-inventory/internal/transport/http/router"
)

// App 两个进程共用的依赖
type App struct {
	DB       *gorm.DB
	JWT      *auth.JWTer
	Services router.Services

	cache *cache.Cache
}

// OpenDB 建连并按配置迁移
func OpenDB(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		SlowThresholdMs:    cfg.DB.SlowThresholdMs,
	}, l)
	if err != nil {
		return nil, err
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		l.Info("automigrate done")
	}
	return db, nil
}

func NewJWTer(c config.JWT) *auth.JWTer {
	return &auth.JWTer{
		Secret:   []byte(c.Secret),
		Issuer:   c.Issuer,
		Audience: c.Audience,
		TTL:      c.TTL(),
	}
}

// New 组装 repo → service；redis 不可用时只记告警，分类查询直接走库
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, l *zap.Logger) *App {
	a := &App{DB: db, JWT: NewJWTer(cfg.JWT)}

	catRepo := repo.NewCategoryRepo(db)
	userRepo := repo.NewUserRepo(db)
	categories := service.NewCategoryService(catRepo, l)

	if cfg.Redis.Enabled() {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := c.Ping(ctx); err != nil {
			l.Warn("redis unavailable, cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			_ = c.Close()
		} else {
			a.cache = c
			categories.WithCache(c, time.Duration(cfg.Redis.CacheTTLSec)*time.Second)
			l.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
		}
	}

	a.Services = router.Services{
		Categories: categories,
		Items:      service.NewItemService(repo.NewItemRepo(db), catRepo, l),
		Suppliers:  service.NewSupplierService(repo.NewSupplierRepo(db), l),
		Users:      service.NewUserService(userRepo, l),
		Auth:       service.NewAuthService(userRepo, a.JWT, l),
	}
	return a
}

func (a *App) Deps(cfg *config.Config, l *zap.Logger) router.Deps {
	return router.Deps{
		Log:      l,
		JWT:      a.JWT,
		Limits:   cfg.Limits,
		BasePath: cfg.App.HTTP.BasePath,
		Metrics:  router.NewMetricsRegistry(),
	}
}

// Close 关闭缓存与连接池
func (a *App) Close() error {
	if a.cache != nil {
		_ = a.cache.Close()
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
