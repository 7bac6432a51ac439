package auth

import "context"

type actorKey struct{}

// Actor 当前请求的操作人，用于写 *_by 字段
type Actor struct {
	Email string
	Role  string
}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}

// ActorEmail 无操作人返回 nil
func ActorEmail(ctx context.Context) *string {
	a, ok := ActorFrom(ctx)
	if !ok || a.Email == "" {
		return nil
	}
	e := a.Email
	return &e
}
