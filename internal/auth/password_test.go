package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/dealer-api/internal/config"
)

// cheap parameters keep the suite fast
var testPasswordParams = config.PasswordConfig{Time: 1, MemoryKiB: 64, Threads: 1, KeyLength: 32}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(testPasswordParams)

	record, err := hasher.Hash("s3cret!")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("s3cret!", record))
	assert.False(t, hasher.Verify("s3cret?", record))
	assert.False(t, hasher.Verify("", record))
}

func TestPasswordHasher_RecordFormat(t *testing.T) {
	hasher := NewPasswordHasher(testPasswordParams)

	record, err := hasher.Hash("s3cret!")
	require.NoError(t, err)

	parts := strings.Split(record, "$")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], saltLength*2)
	assert.Len(t, parts[1], int(testPasswordParams.KeyLength)*2)
}

func TestPasswordHasher_SaltedPerCall(t *testing.T) {
	hasher := NewPasswordHasher(testPasswordParams)

	first, err := hasher.Hash("same")
	require.NoError(t, err)
	second, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same", first))
	assert.True(t, hasher.Verify("same", second))
}

func TestPasswordHasher_KeyLengthFromRecord(t *testing.T) {
	short := NewPasswordHasher(config.PasswordConfig{Time: 1, MemoryKiB: 64, Threads: 1, KeyLength: 16})
	long := NewPasswordHasher(testPasswordParams)

	record, err := short.Hash("s3cret!")
	require.NoError(t, err)

	assert.True(t, long.Verify("s3cret!", record))
}

func TestPasswordHasher_MalformedRecords(t *testing.T) {
	hasher := NewPasswordHasher(testPasswordParams)

	records := map[string]string{
		"empty":           "",
		"no separator":    "abcdef",
		"extra separator": "ab$cd$ef",
		"missing digest":  "abcd$",
		"missing salt":    "$abcd",
		"salt not hex":    "zz$abcd",
		"digest not hex":  "abcd$zz",
	}

	for name, record := range records {
		t.Run(name, func(t *testing.T) {
			assert.False(t, hasher.Verify("s3cret!", record))
		})
	}
}
