// Package requestctx carries request scoped values (request id, acting user)
// from the HTTP layer down to services without importing gin.
package requestctx

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	actorKey     contextKey = "actor_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// WithActor stores the id of the authenticated user performing the request.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey, actorID)
}

func Actor(ctx context.Context) string {
	v, _ := ctx.Value(actorKey).(string)
	return v
}
