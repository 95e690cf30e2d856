package signer

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/ncobase/cookies/cookie"
	"github.com/ncobase/cookies/logging/logger"
)

// separator joins a value and its signature.
const separator = "."

// Signer signs cookie values with an HMAC and verifies them against a list
// of secrets. The first secret signs; every secret verifies, so older
// secrets keep validating cookies issued before a rotation.
//
// A Signer is safe for concurrent use.
type Signer struct {
	mu        sync.RWMutex
	secrets   [][]byte
	algorithm string
	hashFunc  HashFunc
}

// Unsigned is the result of verifying a signed cookie.
type Unsigned struct {
	*cookie.Cookie
	// Valid reports whether one of the secrets produced the signature.
	Valid bool
	// Renew reports that a secret other than the primary one matched, so
	// the cookie should be signed again.
	Renew bool
}

// New creates a Signer. secrets is a string, []byte, []string, [][]byte or
// []any holding strings and byte slices; a single secret becomes a one
// element list. algorithm defaults to sha256.
func New(secrets any, algorithm ...string) (*Signer, error) {
	s := &Signer{}
	if err := s.SetSecrets(secrets); err != nil {
		return nil, err
	}

	alg := DefaultAlgorithm
	if len(algorithm) > 0 && algorithm[0] != "" {
		alg = algorithm[0]
	}
	if err := s.SetAlgorithm(alg); err != nil {
		return nil, err
	}
	return s, nil
}

// SetSecrets replaces the secret list.
func (s *Signer) SetSecrets(secrets any) error {
	list, err := normalizeSecrets(secrets)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets = list
	return nil
}

// SetAlgorithm switches the HMAC hash. The algorithm is checked by building
// a trial HMAC before it is accepted.
func (s *Signer) SetAlgorithm(algorithm string) error {
	name, fn, err := lookupAlgorithm(algorithm)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.algorithm = name
	s.hashFunc = fn
	return nil
}

// Secrets returns a copy of the secret list, primary first.
func (s *Signer) Secrets() [][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]byte, len(s.secrets))
	for i, secret := range s.secrets {
		out[i] = bytes.Clone(secret)
	}
	return out
}

// Algorithm returns the normalized algorithm name.
func (s *Signer) Algorithm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.algorithm
}

// Rotate makes secret the primary signing secret. The previous secrets stay
// as verification candidates; a secret already in the list is moved to the
// front instead of being duplicated.
func (s *Signer) Rotate(ctx context.Context, secret any) error {
	key, err := normalizeSecret(secret)
	if err != nil {
		return err
	}

	s.mu.Lock()
	list := make([][]byte, 0, len(s.secrets)+1)
	list = append(list, key)
	for _, existing := range s.secrets {
		if !bytes.Equal(existing, key) {
			list = append(list, existing)
		}
	}
	s.secrets = list
	count := len(list)
	s.mu.Unlock()

	logger.Infof(ctx, "signer: rotated primary secret, %d secret(s) accepted for verification", count)
	return nil
}

// Sign returns a copy of c whose value is "value.signature". Name,
// attributes and encoder are kept. A nil or unnamed cookie is
// ErrCookieInvalid.
func (s *Signer) Sign(c *cookie.Cookie) (*cookie.Cookie, error) {
	if !constructed(c) {
		return nil, ErrCookieInvalid
	}
	if c.Value() == "" {
		return nil, fmt.Errorf("%w: %q", ErrValueMissing, c.Name())
	}

	secrets, fn := s.snapshot()
	value := c.Value()
	return c.WithValue(value + separator + sign(fn, secrets[0], value))
}

// Unsign verifies a cookie produced by Sign. The value is split at the last
// "." and the signature compared in constant time against each secret in
// order. On a match the returned cookie carries the original value; on a
// mismatch its value is empty and Valid is false. c is never modified.
func (s *Signer) Unsign(c *cookie.Cookie) (*Unsigned, error) {
	if !constructed(c) {
		return nil, ErrCookieInvalid
	}

	payload, actual := splitSigned(c.Value())
	secrets, fn := s.snapshot()

	result := &Unsigned{}
	for i, secret := range secrets {
		expected := sign(fn, secret, payload)
		if equal(expected, actual) {
			result.Valid = true
			result.Renew = i != 0
			break
		}
	}

	value := ""
	if result.Valid {
		value = payload
	}
	out, err := c.WithValue(value)
	if err != nil {
		return nil, err
	}
	result.Cookie = out
	return result, nil
}

// constructed reports whether c came from cookie.New or Parse rather than
// being a nil or zero Cookie.
func constructed(c *cookie.Cookie) bool {
	return c != nil && c.Name() != ""
}

func (s *Signer) snapshot() ([][]byte, HashFunc) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secrets, s.hashFunc
}

// sign computes the unpadded base64 HMAC of value.
func sign(fn HashFunc, secret []byte, value string) string {
	mac := hmac.New(fn, secret)
	mac.Write([]byte(value))
	return base64.RawStdEncoding.EncodeToString(mac.Sum(nil))
}

// splitSigned splits value at its last separator. Without one, the whole
// value is the payload and the signature is empty.
func splitSigned(value string) (payload, signature string) {
	i := strings.LastIndex(value, separator)
	if i < 0 {
		return value, ""
	}
	return value[:i], value[i+1:]
}

func equal(expected, actual string) bool {
	if len(expected) != len(actual) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}

func normalizeSecrets(secrets any) ([][]byte, error) {
	var list [][]byte
	switch v := secrets.(type) {
	case string, []byte:
		key, err := normalizeSecret(v)
		if err != nil {
			return nil, err
		}
		list = [][]byte{key}
	case []string:
		for _, secret := range v {
			key, err := normalizeSecret(secret)
			if err != nil {
				return nil, err
			}
			list = append(list, key)
		}
	case [][]byte:
		for _, secret := range v {
			key, err := normalizeSecret(secret)
			if err != nil {
				return nil, err
			}
			list = append(list, key)
		}
	case []any:
		for _, secret := range v {
			key, err := normalizeSecret(secret)
			if err != nil {
				return nil, err
			}
			list = append(list, key)
		}
	default:
		return nil, ErrSecretInvalid
	}

	if len(list) == 0 {
		return nil, ErrSecretInvalid
	}
	return list, nil
}

func normalizeSecret(secret any) ([]byte, error) {
	switch v := secret.(type) {
	case string:
		if v != "" {
			return []byte(v), nil
		}
	case []byte:
		if len(v) > 0 {
			return bytes.Clone(v), nil
		}
	}
	return nil, ErrSecretInvalid
}
