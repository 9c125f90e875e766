package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned by Verify when the encoded value is not a
// well-formed Argon2id PHC string.
var ErrMalformedHash = errors.New("malformed password hash")

// phcEncoding is the base64 variant mandated by the PHC string format:
// standard alphabet, no padding.
var phcEncoding = base64.RawStdEncoding

// argon2Hasher is the Argon2id implementation of [PasswordHasher].
// Tuning parameters are stored in the struct so they can be
// adjusted in one place.
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen uint32
}

// NewArgon2Hasher constructs a [PasswordHasher] using the Argon2id defaults
// of the reference implementation (t=2, m=19456 KiB, p=1, 32-byte key,
// 16-byte salt).
func NewArgon2Hasher() PasswordHasher {
	return &argon2Hasher{
		time:    2,
		memory:  19 * 1024,
		threads: 1,
		keyLen:  32,
		saltLen: 16,
	}
}

// Hash implements [PasswordHasher]. Each call draws a fresh salt from the
// crypto RNG, so hashing the same password twice yields different strings.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		phcEncoding.EncodeToString(salt), phcEncoding.EncodeToString(key))

	return encoded, nil
}

// Verify implements [PasswordHasher]. The parameters, salt, and digest are
// read back from the PHC string itself, so hashes produced with older tuning
// values keep verifying after the defaults change.
func (h *argon2Hasher) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrMalformedHash
	}
	if version != argon2.Version {
		return false, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := phcEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}

	want, err := phcEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
