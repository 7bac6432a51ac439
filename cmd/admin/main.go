package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-gin-gorm-inventory/internal/app"
	"go-gin-gorm-inventory/internal/core/config"
	"go-gin-gorm-inventory/internal/core/logger"
	"go-gin-gorm-inventory/internal/core/server"
	"go-gin-gorm-inventory/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(logger.Config(cfg.Log))
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret is required (APP_JWT_SECRET)")
	}

	db, err := app.OpenDB(cfg, log)
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	a := app.New(ctx, cfg, db, log)
	cancel()
	defer func() { _ = a.Close() }()

	// 首次启动创建管理员
	if email := cfg.App.Admin.BootstrapEmail; email != "" && cfg.App.Admin.BootstrapPassword != "" {
		created, err := a.Services.Users.Bootstrap(context.Background(), email, cfg.App.Admin.BootstrapPassword)
		if err != nil {
			log.Fatal("bootstrap admin", zap.Error(err))
		}
		log.Info("bootstrap admin", zap.String("email", email), zap.Bool("created", created))
	}

	// 路由（后台端）
	r := router.NewAdminEngine(a.Deps(cfg, log), a.Services)

	errLog, err := logger.ToStdLogger(log.Named("http.admin"), zapcore.ErrorLevel)
	if err != nil {
		log.Fatal("std logger", zap.Error(err))
	}
	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second, errLog)

	// 启动前打印可点击地址
	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	// 异步启动；失败立即退出
	go func() {
		if err := server.StartHTTP(srv, log); err != nil {
			log.Fatal("admin api start FAILED", zap.Error(err))
		}
	}()

	// 关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("admin api stopped gracefully")
}
