package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	hasher := NewHasher()

	hash, err := hasher.Hash("Abcdef12")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash should be PHC formatted: %s", hash)

	assert.True(t, hasher.Verify("Abcdef12", hash))
	assert.False(t, hasher.Verify("Abcdef13", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestHashIsRandomized(t *testing.T) {
	hasher := NewHasher()

	first, err := hasher.Hash("Abcdef12")
	require.NoError(t, err)
	second, err := hasher.Hash("Abcdef12")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same password must hash to different strings")
	assert.True(t, hasher.Verify("Abcdef12", first))
	assert.True(t, hasher.Verify("Abcdef12", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := NewHasher()

	cases := []string{
		"",
		"not-a-hash",
		"$argon2id$",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$!!!",
		"$argon2id$v=1$m=65536,t=3,p=4$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
		"$bcrypt$v=19$m=65536,t=3,p=4$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
	}
	for _, encoded := range cases {
		assert.False(t, hasher.Verify("Abcdef12", encoded), "malformed hash must verify false: %q", encoded)
	}
}
