package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/utils"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantGenerated bool
	}{
		{name: "incoming id is reused", incoming: "my-custom-trace-id"},
		{name: "missing id is generated", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			require.True(t, nextCalled)
			got := rec.Header().Get(traceIDHeader)
			if tt.wantGenerated {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.incoming, got)
		})
	}
}

func TestWithTraceID_AttachesLoggerWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-123", entry["trace_id"])
	assert.Equal(t, "inside handler", entry["message"])
}

func TestWithTraceID_NilGeneratorFallsBack(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	_, err := uuid.Parse(h.newTraceID())
	assert.NoError(t, err)
}
