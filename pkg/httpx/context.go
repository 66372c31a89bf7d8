package httpx

import "context"

type ctxKey string

// CtxKeyActor holds the role that passed an authorization middleware
// ("admin" or "organizer").
const CtxKeyActor ctxKey = "actor"

func ContextWithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, CtxKeyActor, actor)
}

func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyActor).(string); ok {
		return v
	}
	return ""
}
