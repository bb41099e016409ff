package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argonAlgorithm = "argon2id"

// Hasher produces and verifies Argon2id password hashes in PHC string format.
// The output embeds algorithm, parameters and salt, so verification needs no
// state beyond the hash itself.
type Hasher struct {
	memory      uint32
	time        uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewHasher returns a Hasher with the recommended interactive parameters.
func NewHasher() *Hasher {
	return &Hasher{
		memory:      64 * 1024,
		time:        3,
		parallelism: 4,
		saltLength:  16,
		keyLength:   32,
	}
}

// Hash derives an Argon2id hash of password with a fresh random salt. Two
// calls with the same password produce different strings.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("auth: generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.parallelism, h.keyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argonAlgorithm,
		argon2.Version,
		h.memory,
		h.time,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches the encoded hash. Malformed hashes
// verify as false; the function never panics and never returns an error to
// the caller.
func (h *Hasher) Verify(password, encoded string) bool {
	memory, timeCost, parallelism, salt, key, err := parseHash(encoded)
	if err != nil {
		return false
	}
	computed := argon2.IDKey([]byte(password), salt, timeCost, memory, parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(computed, key) == 1
}

func parseHash(encoded string) (memory, timeCost uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argonAlgorithm {
		return 0, 0, 0, nil, nil, errors.New("auth: malformed hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.New("auth: unsupported argon2 version")
	}

	params := strings.Split(parts[3], ",")
	if len(params) != 3 {
		return 0, 0, 0, nil, nil, errors.New("auth: malformed parameters")
	}
	for _, p := range params {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			return 0, 0, 0, nil, nil, errors.New("auth: malformed parameter entry")
		}
		switch kv[0] {
		case "m":
			v, perr := strconv.ParseUint(kv[1], 10, 32)
			if perr != nil {
				return 0, 0, 0, nil, nil, perr
			}
			memory = uint32(v)
		case "t":
			v, perr := strconv.ParseUint(kv[1], 10, 32)
			if perr != nil {
				return 0, 0, 0, nil, nil, perr
			}
			timeCost = uint32(v)
		case "p":
			v, perr := strconv.ParseUint(kv[1], 10, 8)
			if perr != nil {
				return 0, 0, 0, nil, nil, perr
			}
			parallelism = uint8(v)
		default:
			return 0, 0, 0, nil, nil, errors.New("auth: unknown parameter")
		}
	}
	if memory == 0 || timeCost == 0 || parallelism == 0 {
		return 0, 0, 0, nil, nil, errors.New("auth: missing parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, err
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, errors.New("auth: malformed key")
	}
	return memory, timeCost, parallelism, salt, key, nil
}
