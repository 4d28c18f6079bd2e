package context

import (
	"context"

	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetUserEmail(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

// WithPrincipal embeds the authenticated caller into ctx.
func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, p.ID)
	return context.WithValue(ctx, constant.UserEmailKey, p.Email)
}
