package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/dealer-api/internal/config"
)

// Claims is the decoded content of an accepted access token
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type TokenCodec struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
	now        func() time.Time
}

func NewTokenCodec(cfg *config.Config) (*TokenCodec, error) {
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if !config.IsSupportedAlgorithm(cfg.JWTAlgorithm) {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.JWTAlgorithm)
	}

	return &TokenCodec{
		secret:     []byte(cfg.JWTSecretKey),
		method:     jwt.GetSigningMethod(cfg.JWTAlgorithm),
		defaultTTL: time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute,
		now:        time.Now,
	}, nil
}

// Issue signs a token for subject. A zero ttl uses the configured lifetime;
// a negative ttl yields a token that is already expired.
func (c *TokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (c *TokenCodec) Parse(token string) (*Claims, error) {
	var registered jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &registered, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, &RejectedError{Reason: rejectReason(err), Err: err}
	}

	if registered.Subject == "" {
		return nil, &RejectedError{Reason: ReasonMalformed, Err: errors.New("missing subject")}
	}

	claims := &Claims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.Time,
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	return claims, nil
}

func rejectReason(err error) RejectReason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ReasonSignature
	default:
		return ReasonMalformed
	}
}
