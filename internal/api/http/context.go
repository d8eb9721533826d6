package http

import (
	"context"

	"ptoshare-backend/internal/security"
)

type contextKey int

const (
	userIDKey contextKey = iota
	isAdminKey
	requestIDKey
)

func withClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	ctx = context.WithValue(ctx, userIDKey, claims.UserID)
	return context.WithValue(ctx, isAdminKey, claims.IsAdmin)
}

// UserIDFromContext returns the authenticated user set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int32, bool) {
	id, ok := ctx.Value(userIDKey).(int32)
	return id, ok && id > 0
}

func IsAdminFromContext(ctx context.Context) bool {
	admin, _ := ctx.Value(isAdminKey).(bool)
	return admin
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
