package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/internal/domain"
	"github.com/kingrain94/dealer-api/internal/metrics"
	"github.com/kingrain94/dealer-api/internal/repository"
	"github.com/kingrain94/dealer-api/pkg/logger"
	"github.com/kingrain94/dealer-api/pkg/utils"
)

const minPasswordLength = 6

//go:generate mockery --name PasswordHasher --output ../mocks
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, record string) bool
}

//go:generate mockery --name TokenIssuer --output ../mocks
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
}

type AuthService struct {
	repo   repository.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger *logger.Logger
}

func NewAuthService(repo repository.Repository, hasher PasswordHasher, tokens TokenIssuer, logger *logger.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates the account and, when the tenant slug is new, the tenant. Both happen in
// one transaction; the token is only issued after it commits.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.TokenResponse, error) {
	var account *domain.Account
	var tenantCreated bool

	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		_, err := tx.Account().FindByEmail(ctx, req.Email)
		if err == nil {
			return ErrDuplicateAccount
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to look up email: %w", err)
		}

		if utf8.RuneCountInString(req.Password) < minPasswordLength {
			return ErrWeakPassword
		}

		slug, err := utils.Slugify(req.TenantName)
		if err != nil {
			return ErrInvalidTenantName
		}

		tenant, created, err := s.findOrCreateTenant(ctx, tx, slug, req.TenantName)
		if err != nil {
			return err
		}
		tenantCreated = created

		digest, err := s.hasher.Hash(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		account = &domain.Account{
			TenantID:       tenant.ID,
			Email:          req.Email,
			PasswordDigest: digest,
			FullName:       req.FullName,
			IsAdmin:        created,
			IsActive:       true,
		}
		if err := tx.Account().Create(ctx, account); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				return ErrDuplicateAccount
			}
			return fmt.Errorf("failed to create account: %w", err)
		}
		return nil
	})
	if err != nil {
		return dto.TokenResponse{}, err
	}

	if tenantCreated {
		metrics.TenantCreatedCounter.Inc()
	}
	s.logger.Info("account registered",
		zap.Uint("account_id", account.ID),
		zap.Uint("tenant_id", account.TenantID),
		zap.Bool("tenant_created", tenantCreated))

	return s.issue(account.Email)
}

// findOrCreateTenant reports whether the tenant was created by this call.
// Losing the insert race to a concurrent registration re-reads the winner exactly once.
func (s *AuthService) findOrCreateTenant(ctx context.Context, tx repository.Repository, slug, name string) (*domain.Tenant, bool, error) {
	tenant, err := tx.Tenant().FindBySlug(ctx, slug)
	if err == nil {
		return tenant, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up tenant %q: %w", slug, err)
	}

	tenant = &domain.Tenant{Slug: slug, Name: name, IsActive: true}
	err = tx.Tenant().CreateIfAbsent(ctx, tenant)
	if err == nil {
		return tenant, true, nil
	}
	if !errors.Is(err, domain.ErrTenantSlugConflict) {
		return nil, false, fmt.Errorf("failed to create tenant %q: %w", slug, err)
	}

	s.logger.Debug("tenant slug taken concurrently, re-reading", zap.String("slug", slug))
	tenant, err = tx.Tenant().FindBySlug(ctx, slug)
	if err != nil {
		return nil, false, fmt.Errorf("failed to re-read tenant %q after slug conflict: %w", slug, err)
	}
	return tenant, false, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error) {
	account, err := s.repo.Account().FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return dto.TokenResponse{}, ErrInvalidCredentials
		}
		return dto.TokenResponse{}, fmt.Errorf("failed to look up account: %w", err)
	}

	if !s.hasher.Verify(req.Password, account.PasswordDigest) || !account.IsActive {
		return dto.TokenResponse{}, ErrInvalidCredentials
	}

	return s.issue(account.Email)
}

// Me returns the profile of the authenticated account
func (s *AuthService) Me(ctx context.Context, principal *domain.Principal) (*dto.AccountResponse, error) {
	account, err := s.repo.Account().GetByID(ctx, principal.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return dto.FromAccount(account), nil
}

func (s *AuthService) issue(email string) (dto.TokenResponse, error) {
	token, err := s.tokens.Issue(email, 0)
	if err != nil {
		return dto.TokenResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return dto.NewTokenResponse(token), nil
}
