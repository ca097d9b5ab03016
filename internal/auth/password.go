package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/kingrain94/dealer-api/internal/config"
)

const (
	saltLength      = 16
	recordSeparator = "$"
)

// PasswordHasher produces and checks credential records of the form hex(salt)$hex(digest).
// The digest is argon2id over plaintext followed by the hex salt.
type PasswordHasher struct {
	params config.PasswordConfig
}

func NewPasswordHasher(params config.PasswordConfig) *PasswordHasher {
	return &PasswordHasher{params: params}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	digest := h.digest(plaintext, saltHex, salt, h.params.KeyLength)
	return saltHex + recordSeparator + hex.EncodeToString(digest), nil
}

// Verify never fails loudly: a malformed record is simply a mismatch.
func (h *PasswordHasher) Verify(plaintext, record string) bool {
	parts := strings.Split(record, recordSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(parts[1])
	if err != nil || len(expected) == 0 {
		return false
	}

	actual := h.digest(plaintext, parts[0], salt, uint32(len(expected)))
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

func (h *PasswordHasher) digest(plaintext, saltHex string, salt []byte, keyLength uint32) []byte {
	return argon2.IDKey([]byte(plaintext+saltHex), salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, keyLength)
}
