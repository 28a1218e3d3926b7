package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestRedaction(t *testing.T) {
	log, logs := observed()

	log.Info("login",
		"password", "hunter22",
		"session_token", "abc",
		"email", "ada@example.com",
		"header", "eyJhbGciOiJIUzI1.eyJzdWIiOiIxMjM0.sig",
		"path", "/api/me",
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["password"])
	assert.Equal(t, "[REDACTED]", fields["session_token"])
	assert.Equal(t, "[REDACTED]", fields["header"])
	assert.Equal(t, "/api/me", fields["path"])
	assert.Regexp(t, `^hash:[0-9a-f]{12}$`, fields["email"])
	assert.NotContains(t, fields["email"], "ada")
}

func TestWith(t *testing.T) {
	log, logs := observed()

	log.With("assistant", "notes", "secret", "x").Debug("done", "chars", 120)

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "notes", fields["assistant"])
	assert.Equal(t, "[REDACTED]", fields["secret"])
	assert.EqualValues(t, 120, fields["chars"])
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	got := sanitizeKVs([]any{"k", "v", "dangling"})
	assert.Equal(t, []any{"k", "v", "dangling"}, got)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Options{Mode: "prod", File: path})
	require.NoError(t, err)
	log.Info("hello", "n", 1)
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error("ignored", "k", "v") })
}
