package nanoid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret(t *testing.T) {
	a, err := Secret(32, "")
	require.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := Secret(32, "")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSecretAlphabet(t *testing.T) {
	for _, name := range Alphabets() {
		s, err := Secret(64, name)
		require.NoError(t, err, name)
		assert.Len(t, s, 64)
		if chars := alphabets[name]; chars != "" {
			for _, r := range s {
				assert.True(t, strings.ContainsRune(chars, r), "%s: %q", name, r)
			}
		}
	}

	s, err := Secret(20, "HEX")
	require.NoError(t, err)
	assert.Len(t, s, 20)
}

func TestSecretErrors(t *testing.T) {
	_, err := Secret(8, "")
	assert.ErrorIs(t, err, ErrSizeTooSmall)

	_, err = Secret(32, "klingon")
	assert.Error(t, err)
}
