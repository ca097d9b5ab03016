package utils

import (
	"context"
	"errors"

	"github.com/kingrain94/dealer-api/internal/domain"
)

type ContextKey string

const (
	PrincipalKey ContextKey = "principal"
	RequestIDKey ContextKey = "request_id"
)

var (
	ErrNoPrincipalInContext = errors.New("no principal found in context")
	ErrInvalidPrincipalType = errors.New("invalid principal type")
)

func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

// GetPrincipalFromContext returns the principal the auth middleware resolved for this request
func GetPrincipalFromContext(ctx context.Context) (*domain.Principal, error) {
	value := ctx.Value(PrincipalKey)
	if value == nil {
		return nil, ErrNoPrincipalInContext
	}

	principal, ok := value.(*domain.Principal)
	if !ok || principal == nil {
		return nil, ErrInvalidPrincipalType
	}
	return principal, nil
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
