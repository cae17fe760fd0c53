// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
)

// PBKDF2-SHA256 parameters. The encoded hash is self-contained, so these can
// be raised later without invalidating stored credentials.
const (
	// DefaultHashIterations is the work factor used when the caller does not
	// configure one. Must never be set below 10,000.
	DefaultHashIterations = 120_000

	// hashSaltLength is the per-password random salt size in bytes (128 bits).
	hashSaltLength = 16

	// hashKeyLength is the derived key size in bytes (256 bits).
	hashKeyLength = 32

	// hashAlgorithmTag identifies the scheme inside the encoded string.
	hashAlgorithmTag = "pbkdf2_sha256"
)

// ErrEmptyPassword is returned when an empty plaintext is supplied for
// hashing. It is a validation error; client input that reaches the hasher
// unchecked must still classify as a bad request, not a server fault.
var ErrEmptyPassword = apperr.ValidationError("Password must not be empty")

// PasswordHasher derives and verifies password hashes using PBKDF2-SHA256.
//
// # Encoding
//
// Hashes are stored as a single string:
//
//	pbkdf2_sha256$<iterations>$<base64 salt>$<base64 derived key>
//
// The salt is freshly drawn from crypto/rand on every call, so hashing the
// same plaintext twice yields different outputs.
type PasswordHasher struct {
	iterations int
}

// NewPasswordHasher creates a hasher with the given iteration count.
// Counts below [DefaultHashIterations]'s floor are clamped up to the default.
func NewPasswordHasher(iterations int) *PasswordHasher {
	if iterations < 10_000 {
		iterations = DefaultHashIterations
	}
	return &PasswordHasher{iterations: iterations}
}

// HashPassword derives a salted hash from a plain-text password.
//
// It fails only on empty input or an entropy-source failure; both are
// caller errors that must not be silently swallowed.
func (hasher *PasswordHasher) HashPassword(plainTextPassword string) (string, error) {
	if plainTextPassword == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, hashSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("sec: failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plainTextPassword), salt, hasher.iterations, hashKeyLength, sha256.New)

	encoded := strings.Join([]string{
		hashAlgorithmTag,
		strconv.Itoa(hasher.iterations),
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	}, "$")

	return encoded, nil
}

// VerifyPassword compares a plain-text password with an encoded hash.
//
// It never returns an error: any malformed, truncated, or tampered hash
// verifies as false. The derived-key comparison is constant-time to avoid
// timing side channels.
func (hasher *PasswordHasher) VerifyPassword(plainTextPassword, encodedHash string) bool {
	iterations, salt, expectedKey, ok := decodeHash(encodedHash)
	if !ok {
		return false
	}

	derivedKey := pbkdf2.Key([]byte(plainTextPassword), salt, iterations, len(expectedKey), sha256.New)

	return subtle.ConstantTimeCompare(derivedKey, expectedKey) == 1
}

// decodeHash parses the self-contained hash encoding.
// It reports ok=false on any structural problem instead of returning an error.
func decodeHash(encodedHash string) (iterations int, salt, key []byte, ok bool) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 4 || parts[0] != hashAlgorithmTag {
		return 0, nil, nil, false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return 0, nil, nil, false
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return 0, nil, nil, false
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(key) != hashKeyLength {
		return 0, nil, nil, false
	}

	return iterations, salt, key, true
}
