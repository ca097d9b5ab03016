package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/dealer-api/internal/config"
)

func newTestCodec(t *testing.T, algorithm string) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(&config.Config{
		JWTSecretKey:             "test-secret",
		JWTAlgorithm:             algorithm,
		AccessTokenExpireMinutes: 30,
	})
	require.NoError(t, err)
	return codec
}

func requireRejected(t *testing.T, err error, reason RejectReason) {
	t.Helper()
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, reason, rejected.Reason)
}

func TestTokenCodec_IssueAndParse(t *testing.T) {
	codec := newTestCodec(t, "HS256")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return now }

	token, err := codec.Issue("owner@acme.com", 0)
	require.NoError(t, err)

	claims, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.com", claims.Subject)
	assert.True(t, claims.IssuedAt.Equal(now))
	assert.True(t, claims.ExpiresAt.Equal(now.Add(30*time.Minute)))
}

func TestTokenCodec_ExplicitTTL(t *testing.T) {
	codec := newTestCodec(t, "HS384")

	token, err := codec.Issue("owner@acme.com", 2*time.Hour)
	require.NoError(t, err)

	claims, err := codec.Parse(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt, 2*time.Second)
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := newTestCodec(t, "HS256")

	token, err := codec.Issue("owner@acme.com", -time.Minute)
	require.NoError(t, err)

	_, err = codec.Parse(token)
	requireRejected(t, err, ReasonExpired)
}

func TestTokenCodec_ExpiresWithClock(t *testing.T) {
	codec := newTestCodec(t, "HS256")
	now := time.Now()
	codec.now = func() time.Time { return now }

	token, err := codec.Issue("owner@acme.com", time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = codec.Parse(token)
	requireRejected(t, err, ReasonExpired)
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	codec := newTestCodec(t, "HS256")

	token, err := codec.Issue("owner@acme.com", 0)
	require.NoError(t, err)

	dot := strings.LastIndex(token, ".")
	signature := []byte(token[dot+1:])
	mid := len(signature) / 2
	if signature[mid] == 'A' {
		signature[mid] = 'B'
	} else {
		signature[mid] = 'A'
	}

	_, err = codec.Parse(token[:dot+1] + string(signature))
	requireRejected(t, err, ReasonSignature)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := newTestCodec(t, "HS256")
	other, err := NewTokenCodec(&config.Config{JWTSecretKey: "other-secret", JWTAlgorithm: "HS256", AccessTokenExpireMinutes: 30})
	require.NoError(t, err)

	token, err := issuer.Issue("owner@acme.com", 0)
	require.NoError(t, err)

	_, err = other.Parse(token)
	requireRejected(t, err, ReasonSignature)
}

func TestTokenCodec_WrongAlgorithm(t *testing.T) {
	issuer := newTestCodec(t, "HS512")
	parser := newTestCodec(t, "HS256")

	token, err := issuer.Issue("owner@acme.com", 0)
	require.NoError(t, err)

	_, err = parser.Parse(token)
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := newTestCodec(t, "HS256")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Parse(token)
		requireRejected(t, err, ReasonMalformed)
	}
}

func TestTokenCodec_MissingSubject(t *testing.T) {
	codec := newTestCodec(t, "HS256")

	token, err := codec.Issue("", 0)
	require.NoError(t, err)

	_, err = codec.Parse(token)
	requireRejected(t, err, ReasonMalformed)
}

func TestNewTokenCodec_InvalidConfig(t *testing.T) {
	_, err := NewTokenCodec(&config.Config{JWTSecretKey: "", JWTAlgorithm: "HS256"})
	assert.Error(t, err)

	_, err = NewTokenCodec(&config.Config{JWTSecretKey: "secret", JWTAlgorithm: "RS256"})
	assert.Error(t, err)
}
