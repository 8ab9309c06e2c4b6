package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	minSaltLen = 8
	minKeyLen  = 4

	// Upper bounds applied to parameters decoded from stored hashes.
	maxTime      = 64
	maxMemoryKiB = 4 * 1024 * 1024
	maxKeyLen    = 1024
)

// ErrInvalidPasswordConfig reports undersized or malformed hashing parameters.
var ErrInvalidPasswordConfig = errors.New("auth: invalid password hashing config")

// Argon2Params are the cost parameters of an Argon2id hash.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
}

// Validate rejects parameters argon2 would refuse or that are trivially cheap.
func (p Argon2Params) Validate() error {
	switch {
	case p.Time < 1:
		return fmt.Errorf("%w: time must be at least 1", ErrInvalidPasswordConfig)
	case p.Threads < 1:
		return fmt.Errorf("%w: threads must be at least 1", ErrInvalidPasswordConfig)
	case p.MemoryKiB < 8*uint32(p.Threads):
		return fmt.Errorf("%w: memory must be at least 8 KiB per thread", ErrInvalidPasswordConfig)
	case p.KeyLen < minKeyLen:
		return fmt.Errorf("%w: key length must be at least %d bytes", ErrInvalidPasswordConfig, minKeyLen)
	}
	return nil
}

// HashPassword derives an Argon2id hash and returns it in PHC string format:
// $argon2id$v=19$m=<kib>,t=<time>,p=<threads>$<salt>$<hash>
// The output is deterministic for identical inputs.
func HashPassword(password string, salt []byte, params Argon2Params) (string, error) {
	if err := validate(salt, params); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Threads, params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.MemoryKiB, params.Time, params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks password against a PHC encoded Argon2id hash.
// Malformed hashes never match.
func VerifyPassword(encoded, password string) bool {
	salt, hash, params, err := decodePHC(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Threads, uint32(len(hash))) //nolint:gosec // bounded by maxKeyLen

	return subtle.ConstantTimeCompare(hash, candidate) == 1
}

func validate(salt []byte, params Argon2Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if len(salt) < minSaltLen {
		return fmt.Errorf("%w: salt must be at least %d bytes", ErrInvalidPasswordConfig, minSaltLen)
	}
	return nil
}

func decodePHC(encoded string) (salt, hash []byte, params Argon2Params, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 { //nolint:mnd // PHC format has exactly 6 $-delimited parts
		return nil, nil, params, errors.New("invalid PHC hash format")
	}

	if parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil { //nolint:govet // shadow
		return nil, nil, params, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, params, fmt.Errorf("unsupported version: %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.MemoryKiB, &params.Time, &params.Threads); err != nil { //nolint:govet // shadow
		return nil, nil, params, fmt.Errorf("parsing parameters: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding salt: %w", err)
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding hash: %w", err)
	}

	params.KeyLen = uint32(len(hash)) //nolint:gosec // checked below
	if err = validate(salt, params); err != nil {
		return nil, nil, params, err
	}
	if params.Time > maxTime || params.MemoryKiB > maxMemoryKiB || params.KeyLen > maxKeyLen {
		return nil, nil, params, errors.New("hash parameters out of range")
	}

	return salt, hash, params, nil
}

// PasswordConfig is the process-wide hashing configuration.
type PasswordConfig struct {
	Salt   string
	Params Argon2Params
}

// Hasher hashes and verifies passwords with a fixed salt and cost.
type Hasher struct {
	salt   []byte
	params Argon2Params
}

// NewHasher validates cfg once at startup.
func NewHasher(cfg PasswordConfig) (*Hasher, error) {
	if err := validate([]byte(cfg.Salt), cfg.Params); err != nil {
		return nil, err
	}
	return &Hasher{salt: []byte(cfg.Salt), params: cfg.Params}, nil
}

// Params returns the configured cost parameters.
func (h *Hasher) Params() Argon2Params {
	return h.params
}

// Hash returns the PHC encoded hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	return HashPassword(password, h.salt, h.params)
}

// Verify reports whether password matches the stored hash.
func (h *Hasher) Verify(encoded, password string) bool {
	return VerifyPassword(encoded, password)
}
