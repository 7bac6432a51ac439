package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger 把 gorm 的 SQL 日志接到 zap
type GormLogger struct {
	l              *zap.Logger
	level          gormlogger.LogLevel
	slow           time.Duration
	ignoreNotFound bool
}

type GormOption func(*GormLogger)

// WithSlowThreshold 0 表示关闭慢查询告警
func WithSlowThreshold(d time.Duration) GormOption {
	return func(g *GormLogger) { g.slow = d }
}

func WithIgnoreRecordNotFound(ignore bool) GormOption {
	return func(g *GormLogger) { g.ignoreNotFound = ignore }
}

func NewGormLogger(l *zap.Logger, level gormlogger.LogLevel, opts ...GormOption) *GormLogger {
	g := &GormLogger{
		l:              l.Named("gorm"),
		level:          level,
		slow:           200 * time.Millisecond,
		ignoreNotFound: true,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *g
	cp.level = level
	return &cp
}

func (g *GormLogger) Info(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Info {
		g.l.Sugar().Infof(msg, data...)
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Warn {
		g.l.Sugar().Warnf(msg, data...)
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, data ...any) {
	if g.level >= gormlogger.Error {
		g.l.Sugar().Errorf(msg, data...)
	}
}

func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && g.level >= gormlogger.Error:
		if g.ignoreNotFound && errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		g.l.Error("sql error", append(g.fields(ctx, elapsed, fc), zap.Error(err))...)
	case g.slow > 0 && elapsed > g.slow && g.level >= gormlogger.Warn:
		g.l.Warn("slow sql", append(g.fields(ctx, elapsed, fc), zap.Duration("threshold", g.slow))...)
	case g.level >= gormlogger.Info:
		g.l.Debug("sql", g.fields(ctx, elapsed, fc)...)
	}
}

func (g *GormLogger) fields(ctx context.Context, elapsed time.Duration, fc func() (string, int64)) []zap.Field {
	sql, rows := fc()
	fs := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}
	if rid := RequestID(ctx); rid != "" {
		fs = append(fs, zap.String("request_id", rid))
	}
	return fs
}

// GormLevel 配置串 → gorm 日志级别，未知值按 warn
func GormLevel(s string) gormlogger.LogLevel {
	switch s {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
