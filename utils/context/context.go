package context

import (
	"context"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRole(ctx context.Context) (constant.Role, bool) {
	v := ctx.Value(constant.RoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(constant.Role)
	return role, ok
}

// GetCaller returns the authenticated caller embedded by the auth middleware.
func GetCaller(ctx context.Context) (model.Caller, bool) {
	id, ok := GetUserID(ctx)
	if !ok {
		return model.Caller{}, false
	}
	role, ok := GetRole(ctx)
	if !ok {
		return model.Caller{}, false
	}
	return model.Caller{UserID: id, Role: role}, true
}

func WithCaller(ctx context.Context, caller model.Caller) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, caller.UserID)
	return context.WithValue(ctx, constant.RoleKey, caller.Role)
}
