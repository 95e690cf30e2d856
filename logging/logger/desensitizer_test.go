package logger

import (
	"testing"

	"github.com/ncobase/cookies/logging/logger/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesensitizeFields(t *testing.T) {
	d, err := NewDesensitizer(&config.Desensitization{
		Enabled:         true,
		SensitiveFields: []string{"secret", "signature"},
		MaskChar:        "#",
		FixedMaskLength: 4,
	})
	require.NoError(t, err)

	in := logrus.Fields{
		"signer_secrets": []string{"a", "b"},
		"cookie":         map[string]any{"name": "sid", "signature": "xyz"},
		"empty_secret":   "",
		"count":          3,
	}
	out := d.DesensitizeFields(in)

	assert.Equal(t, "####", out["signer_secrets"])
	assert.Equal(t, map[string]any{"name": "sid", "signature": "####"}, out["cookie"])
	assert.Equal(t, "", out["empty_secret"])
	assert.Equal(t, 3, out["count"])
	assert.Equal(t, []string{"a", "b"}, in["signer_secrets"], "input is not modified")
}

func TestExactFieldMatch(t *testing.T) {
	d, err := NewDesensitizer(&config.Desensitization{
		Enabled:         true,
		SensitiveFields: []string{"secret"},
		MaskChar:        "*",
		FixedMaskLength: 3,
		ExactFieldMatch: true,
	})
	require.NoError(t, err)

	out := d.DesensitizeFields(logrus.Fields{"Secret": "a", "secret_count": 2})
	assert.Equal(t, "***", out["Secret"])
	assert.Equal(t, 2, out["secret_count"])
}
