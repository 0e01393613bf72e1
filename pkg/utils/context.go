package utils

import (
	"context"

	"github.com/google/uuid"

	"flight-booking/internal/data/entity"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

func SetUserContext(ctx context.Context, userID uuid.UUID, role entity.UserRole) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, userRoleKey, role)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

func GetUserRoleFromContext(ctx context.Context) (entity.UserRole, bool) {
	role, ok := ctx.Value(userRoleKey).(entity.UserRole)
	return role, ok
}
