package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/repository"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

// Resolver turns a bearer token into the principal every scoped operation runs as
type Resolver struct {
	codec    *TokenCodec
	accounts repository.AccountRepository
	logger   *logger.Logger
}

func NewResolver(codec *TokenCodec, accounts repository.AccountRepository, logger *logger.Logger) *Resolver {
	return &Resolver{
		codec:    codec,
		accounts: accounts,
		logger:   logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := r.codec.Parse(token)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			r.logger.Debug("token rejected", zap.String("reason", string(rejected.Reason)))
		}
		return nil, ErrUnauthorized
	}

	account, err := r.accounts.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.Debug("token subject has no account")
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load account for token: %w", err)
	}

	if !account.IsActive {
		r.logger.Debug("token subject is inactive", zap.Uint("account_id", account.ID))
		return nil, ErrUnauthorized
	}

	return domain.NewPrincipal(account), nil
}
