package signer

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// DefaultAlgorithm is used when New is called without an algorithm.
const DefaultAlgorithm = "sha256"

// HashFunc constructs the hash an HMAC is built on.
type HashFunc func() hash.Hash

var (
	algorithms = map[string]HashFunc{
		"md5":         md5.New,
		"sha1":        sha1.New,
		"sha224":      sha256.New224,
		"sha256":      sha256.New,
		"sha384":      sha512.New384,
		"sha512":      sha512.New,
		"sha512-224":  sha512.New512_224,
		"sha512-256":  sha512.New512_256,
		"sha3-224":    func() hash.Hash { return sha3.New224() },
		"sha3-256":    func() hash.Hash { return sha3.New256() },
		"sha3-384":    func() hash.Hash { return sha3.New384() },
		"sha3-512":    func() hash.Hash { return sha3.New512() },
		"blake2b-256": unkeyed(blake2b.New256),
		"blake2b-384": unkeyed(blake2b.New384),
		"blake2b-512": unkeyed(blake2b.New512),
		"blake2s-256": unkeyed(blake2s.New256),
	}
	algorithmsMu sync.RWMutex
)

// unkeyed adapts a keyed blake2 constructor; HMAC supplies the key.
func unkeyed(fn func(key []byte) (hash.Hash, error)) HashFunc {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// RegisterAlgorithm makes a hash available to signers under name.
// Names are case insensitive; registering an existing name replaces it.
func RegisterAlgorithm(name string, fn HashFunc) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || fn == nil {
		return fmt.Errorf("%w: %q", ErrAlgorithmUnsupported, name)
	}
	if err := probe(fn); err != nil {
		return fmt.Errorf("%w: %q", ErrAlgorithmUnsupported, name)
	}

	algorithmsMu.Lock()
	defer algorithmsMu.Unlock()
	algorithms[key] = fn
	return nil
}

// Algorithms returns the registered algorithm names, sorted.
func Algorithms() []string {
	algorithmsMu.RLock()
	defer algorithmsMu.RUnlock()

	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupAlgorithm resolves name to a hash constructor that is known to
// produce a working HMAC.
func lookupAlgorithm(name string) (string, HashFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	algorithmsMu.RLock()
	fn, ok := algorithms[key]
	algorithmsMu.RUnlock()

	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrAlgorithmUnsupported, name)
	}
	if err := probe(fn); err != nil {
		return "", nil, fmt.Errorf("%w: %q", ErrAlgorithmUnsupported, name)
	}
	return key, fn, nil
}

// probe builds a trial HMAC keyed with random bytes.
func probe(fn HashFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("hash constructor panicked: %v", r)
		}
	}()

	key := make([]byte, 16)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	mac := hmac.New(fn, key)
	mac.Write([]byte("probe"))
	if len(mac.Sum(nil)) == 0 {
		return fmt.Errorf("empty digest")
	}
	return nil
}

// Supported reports whether name resolves to a usable algorithm.
func Supported(name string) bool {
	_, _, err := lookupAlgorithm(name)
	return err == nil
}
