package domain

import "errors"

var (
	// ErrNotFound covers both missing records and records owned by another tenant
	ErrNotFound = errors.New("record not found")

	// ErrTenantSlugConflict means a concurrent registration created the tenant first
	ErrTenantSlugConflict = errors.New("tenant slug already exists")

	ErrDuplicateEmail = errors.New("email already exists")
)
