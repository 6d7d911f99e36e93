package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
		wantErr    bool
	}{
		{
			name:       "message body",
			data:       map[string]string{"Message": "User not found."},
			status:     http.StatusNotFound,
			wantBody:   `{"Message":"User not found."}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty slice stays an array",
			data:       []int{},
			status:     http.StatusOK,
			wantBody:   `[]`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusOK,
			wantBody:   `null`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "not serializable",
			data:       make(chan int),
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
