package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-gin-gorm-inventory/internal/core/config"
	"go-gin-gorm-inventory/internal/transport/http/router"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Read(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.DB.Driver = "sqlite"
	cfg.DB.DSN = filepath.Join(t.TempDir(), "app.db")
	cfg.DB.MaxOpenConns = 1
	cfg.JWT.Secret = "app-secret"
	return cfg
}

func TestNew_WiresServices(t *testing.T) {
	cfg := testConfig(t)
	// 不可达的 redis 只降级，不影响启动
	cfg.Redis.Addr = "127.0.0.1:1"
	l := zap.NewNop()

	db, err := OpenDB(cfg, l)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	a := New(ctx, cfg, db, l)
	t.Cleanup(func() { _ = a.Close() })

	assert.Nil(t, a.cache)
	assert.Equal(t, time.Hour, a.JWT.TTL)
	assert.Equal(t, []string{"inventory"}, a.JWT.Audience)

	created, err := a.Services.Users.Bootstrap(context.Background(), "root@x.io", "rootpass")
	require.NoError(t, err)
	assert.True(t, created)
	res, err := a.Services.Auth.Login(context.Background(), "root@x.io", "rootpass")
	require.NoError(t, err)
	claims, err := a.JWT.Parse(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "SYSTEMADMIN", claims.Role)

	gin.SetMode(gin.TestMode)
	r := router.NewAPIEngine(a.Deps(cfg, l), a.Services)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestOpenDB_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Driver = "oracle"
	_, err := OpenDB(cfg, zap.NewNop())
	assert.Error(t, err)
}
