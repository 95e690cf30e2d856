package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ncobase/cookies/cookie"
	"github.com/ncobase/cookies/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
app_name: demo
run_mode: debug
logger:
  level: 5
  format: json
cookie:
  path: /
  max_age: 0
  secure: true
  same_site: LAX
  encoder: base64
signer:
  algorithm: SHA512
  secrets:
    - current
    - previous
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.AppName)
	assert.Equal(t, "debug", cfg.RunMode)
	assert.Equal(t, 5, cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "stderr", cfg.Logger.Output)
	assert.Equal(t, path, cfg.File())

	assert.Equal(t, cookie.Values{
		cookie.AttrPath:     "/",
		cookie.AttrMaxAge:   0,
		cookie.AttrSecure:   true,
		cookie.AttrSameSite: "LAX",
	}, cfg.Cookie.Values())
	assert.Equal(t, "base64", cfg.Cookie.Encoder)

	require.NotNil(t, cfg.Signer)
	assert.Equal(t, []string{"current", "previous"}, cfg.Signer.Secrets)
	assert.Equal(t, "SHA512", cfg.Signer.Algorithm)

	current, err := GetConfig()
	require.NoError(t, err)
	assert.Same(t, cfg, current)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.Equal(t, "cookies", cfg.AppName)
	assert.Equal(t, "release", cfg.RunMode)
	assert.Equal(t, 4, cfg.Logger.Level)
	assert.Equal(t, "uri", cfg.Cookie.Encoder)
	assert.Empty(t, cfg.Cookie.Values())
	assert.Nil(t, cfg.Signer)

	sc := ProvideSignerConfig(cfg)
	assert.Empty(t, sc.Secrets)
	assert.Equal(t, "sha256", sc.Algorithm)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("COOKIES_SIGNER_SECRETS", "a b")
	t.Setenv("COOKIES_SIGNER_ALGORITHM", "sha1")
	t.Setenv("COOKIES_LOGGER_FORMAT", "json")

	cfg, err := LoadConfig(writeConfig(t, "app_name: env\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Signer)
	assert.Equal(t, []string{"a", "b"}, cfg.Signer.Secrets)
	assert.Equal(t, "sha1", cfg.Signer.Algorithm)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"run mode":      "run_mode: staging\n",
		"same site":     "cookie:\n  same_site: sometimes\n",
		"priority":      "cookie:\n  priority: urgent\n",
		"path":          "cookie:\n  path: \"/a;b\"\n",
		"encoder":       "cookie:\n  encoder: rot13\n",
		"algorithm":     "signer:\n  algorithm: crc32\n  secrets: [a]\n",
		"empty secret":  "signer:\n  secrets: [a, \"\"]\n",
		"logger output": "logger:\n  output: syslog\n",
		"log file":      "logger:\n  output: file\n",
		"logger level":  "logger:\n  level: 9\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.ErrorIs(t, err, validator.ErrInvalid)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReloadAndWatch(t *testing.T) {
	path := writeConfig(t, "app_name: first\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	changed := make(chan *Config, 4)
	require.NoError(t, cfg.Watch(func(next *Config) {
		select {
		case changed <- next:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("app_name: second\n"), 0o600))
	select {
	case next := <-changed:
		assert.Equal(t, "second", next.AppName)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not observed")
	}

	reloaded, err := Reload()
	require.NoError(t, err)
	assert.Equal(t, "second", reloaded.AppName)
}

func TestWatchWithoutFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)

	cfg, err := LoadConfig("")
	if err != nil || cfg.File() != "" {
		t.Skip("a config file is installed on this machine")
	}
	assert.ErrorIs(t, cfg.Watch(nil), ErrNoConfigFile)
}
