package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/ncobase/cookies/ctxutil"
	"github.com/ncobase/cookies/logging/logger/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, cfg *config.Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	l := &Logger{Logger: logrus.New()}
	cleanup, err := l.Init(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestEntryFromContext(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "json"
	l, buf := newTestLogger(t, cfg)
	l.SetVersion("v1.2.3")

	ctx, traceID := EnsureTraceID(context.Background())
	ctx = ctxutil.SetCommand(ctx, "sign")
	l.Infof(ctx, "signed %s", "sid")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "signed sid", entry["msg"])
	assert.Equal(t, traceID, entry[traceKey])
	assert.Equal(t, "sign", entry[commandKey])
	assert.Equal(t, "v1.2.3", entry[VersionKey])
	assert.Equal(t, "info", entry["level"])
}

func TestLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "json"
	cfg.Level = int(logrus.WarnLevel)
	l, buf := newTestLogger(t, cfg)

	l.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestDesensitizeHook(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "json"
	cfg.Desensitization.CustomPatterns = []string{`sid=[^ ]+`}
	l, buf := newTestLogger(t, cfg)

	l.entryFromContext(context.Background()).WithFields(logrus.Fields{
		"secret":    "hunter2",
		"name":      "sid",
		"signature": []byte("abc"),
	}).Info("header sid=abc.def sent")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "******", entry["secret"])
	assert.Equal(t, "******", entry["signature"])
	assert.Equal(t, "sid", entry["name"])
	assert.Equal(t, "header ****** sent", entry["msg"])
}

func TestDesensitizeDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "json"
	cfg.Desensitization.Enabled = false
	l, buf := newTestLogger(t, cfg)

	l.entryFromContext(context.Background()).WithField("secret", "hunter2").Info("x")
	assert.Equal(t, "hunter2", decodeEntry(t, buf)["secret"])
}

func TestInvalidPattern(t *testing.T) {
	cfg := config.Default()
	cfg.Desensitization.CustomPatterns = []string{"("}
	_, err := (&Logger{Logger: logrus.New()}).Init(cfg)
	assert.Error(t, err)
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output = "file"
	cfg.OutputFile = filepath.Join(dir, "logs", "cookies.log")

	l := &Logger{Logger: logrus.New()}
	cleanup, err := l.Init(cfg)
	require.NoError(t, err)
	l.Info(context.Background(), "to file")
	cleanup()

	matches, err := filepath.Glob(filepath.Join(dir, "logs", "cookies.*.log"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	cfg.OutputFile = ""
	_, err = l.Init(cfg)
	assert.Error(t, err)
}

func TestProvideLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Desensitization.CustomPatterns = []string{"("}
	l, cleanup, err := ProvideLogger(cfg)
	assert.Error(t, err)
	assert.Nil(t, l)
	assert.Nil(t, cleanup)

	l, cleanup, err = ProvideLogger(nil)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	assert.Same(t, StdLogger(), l)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}
