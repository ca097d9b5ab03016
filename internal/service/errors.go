package service

import (
	"errors"

	"github.com/kingrain94/dealer-api/internal/auth"
	"github.com/kingrain94/dealer-api/internal/domain"
)

var (
	// Registration and login errors
	ErrDuplicateAccount   = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")
	ErrInvalidTenantName  = errors.New("tenant name must contain at least one letter or digit")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnauthorized       = auth.ErrUnauthorized

	// ErrForbidden is only used for admin-only operations inside the caller's own tenant
	ErrForbidden = errors.New("admin privileges required")

	ErrInvalidFile  = errors.New("invalid file")
	ErrInvalidQuery = errors.New("invalid query")
)

// NotFoundError names the missing resource. It matches domain.ErrNotFound, which is also
// what a record owned by another tenant looks like.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == domain.ErrNotFound
}

// notFound rewrites domain.ErrNotFound into a NotFoundError for resource and passes other errors through
func notFound(err error, resource string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}
