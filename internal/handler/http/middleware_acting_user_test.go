package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/utils"
)

func TestWithActingUser(t *testing.T) {
	for _, userID := range []int64{1, 2, 42} {
		h := &Handler{logger: logger.Nop(), actingUserID: userID}

		var (
			got   int64
			found bool
		)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, found = utils.GetUserIDFromContext(r.Context())
		})

		h.withActingUser(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/user/favorites", nil))

		assert.True(t, found)
		assert.Equal(t, userID, got)
	}
}
