package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_RoleAndTimestamp verifies that every entry carries the role
// and a timestamp.
func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role", zerolog.DebugLevel)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLoggerWithLevel_UnknownLevelFallsBackToDebug(t *testing.T) {
	l := NewLoggerWithLevel("test", "not-a-level")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLoggerWithLevel_ParsesLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	l := NewLoggerWithLevel("test", "warn")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestGetChildLogger_IndependentFields verifies that fields added to the
// child do not leak into the parent.
func TestGetChildLogger_IndependentFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("from parent")
	entry := decodeEntry(t, &buf)
	assert.NotContains(t, entry, "trace_id")

	buf.Reset()
	child.Info().Msg("from child")
	entry = decodeEntry(t, &buf)
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx", zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("through context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx", entry["role"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "req", zerolog.DebugLevel)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	FromRequest(r).Info().Msg("through request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req", entry["role"])
}

func TestFromContext_NoLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
