package logger

import "context"

type ctxKey struct{}

// WithRequestID 把请求 ID 放进 ctx，gorm 日志会带上
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
