package nanoid

import (
	"fmt"
	"sort"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// MinSecretSize is the shortest secret Secret will produce.
const MinSecretSize = 16

// Character sets
const (
	Number    = "0123456789"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Symbol    = "!#$%&()*+,-./:;<=>?@[]^_`{|}~"
	URLSafe   = Uppercase + Lowercase + Number + "-_"
)

var alphabets = map[string]string{
	"default":  "",
	"alnum":    Number + Lowercase + Uppercase,
	"urlsafe":  URLSafe,
	"hex":      Number + "abcdef",
	"symbolic": Number + Lowercase + Uppercase + Symbol,
}

// ErrSizeTooSmall is returned for secrets shorter than MinSecretSize.
var ErrSizeTooSmall = fmt.Errorf("nanoid: secret size must be at least %d", MinSecretSize)

// Alphabets returns the names accepted by Secret, sorted.
func Alphabets() []string {
	names := make([]string, 0, len(alphabets))
	for name := range alphabets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Secret generates a random secret of size characters drawn from the named
// alphabet. An empty name uses the nanoid default alphabet.
func Secret(size int, alphabet string) (string, error) {
	if size < MinSecretSize {
		return "", fmt.Errorf("%w, got %d", ErrSizeTooSmall, size)
	}

	chars, ok := alphabets[strings.ToLower(alphabet)]
	if alphabet != "" && !ok {
		return "", fmt.Errorf("nanoid: unknown alphabet %q", alphabet)
	}
	if chars == "" {
		return gonanoid.New(size)
	}
	return gonanoid.Generate(chars, size)
}
