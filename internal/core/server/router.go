package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter 基础 engine：panic 恢复（zap 记录堆栈，返回 JSON 500）+ CORS
//
// 访问日志由 transport 层的 AccessLog 负责，这里不再挂 ginzap.Ginzap。
func NewRouter(l *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}))

	cc := cors.DefaultConfig()
	cc.AllowAllOrigins = true
	cc.AddAllowHeaders("Authorization", "X-Request-ID")
	cc.AddExposeHeaders("X-Request-ID")
	r.Use(cors.New(cc))
	return r
}

// StartHTTP 阻塞直到 server 关闭；Shutdown 引起的 ErrServerClosed 不算错误
func StartHTTP(srv *http.Server, l *zap.Logger) error {
	l.Info("http starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration, errLog *log.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       rt,
		ReadHeaderTimeout: rt,
		WriteTimeout:      wt,
		IdleTimeout:       it,
		MaxHeaderBytes:    1 << 20, // 1MB
		ErrorLog:          errLog,
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
