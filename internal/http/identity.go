package http

import (
	"context"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
)

type contextKey string

const (
	userContextKey      contextKey = "user"
	requestIDContextKey contextKey = "request_id"
)

// ContextIdentity resolves the current user from request context values set
// by HeaderAuthMiddleware. It is the IdentityProvider handed to the checkout
// service, so identity survives into gateway tasks through context values.
type ContextIdentity struct{}

func (ContextIdentity) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	if !ok {
		return nil, nil
	}
	return user, nil
}

func userFromContext(ctx context.Context) *domain.User {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func getRequestID(ctx context.Context) string {
	id, ok := ctx.Value(requestIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}
