package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	TypeUserKey  contextKey = "type_user"
	RequestIDKey contextKey = "request_id"
)

func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

func GetTypeUserFromContext(ctx context.Context) (int, bool) {
	typeUser, ok := ctx.Value(TypeUserKey).(int)
	return typeUser, ok
}

func SetUserContext(ctx context.Context, userID uint, typeUser int) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, TypeUserKey, typeUser)
	return ctx
}

// GetRequestIDFromContext returns the id assigned by the RequestID middleware.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
