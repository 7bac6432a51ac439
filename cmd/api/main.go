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

	// 数据库（失败直接 Fatal）
	db, err := app.OpenDB(cfg, log)
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	a := app.New(ctx, cfg, db, log)
	cancel()
	defer func() { _ = a.Close() }()

	// 路由（用户端）
	r := router.NewAPIEngine(a.Deps(cfg, log), a.Services)

	// HTTP Server
	errLog, err := logger.ToStdLogger(log.Named("http.server"), zapcore.ErrorLevel)
	if err != nil {
		log.Fatal("std logger", zap.Error(err))
	}
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
		errLog,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("inventory api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+cfg.App.HTTP.BasePath),
	)

	// 异步启动
	go func() {
		if err := server.StartHTTP(srv, log); err != nil {
			log.Fatal("inventory api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("inventory api stopped gracefully")
}
