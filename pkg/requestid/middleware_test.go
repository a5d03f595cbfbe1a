package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metafit/gymkit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("propagates inbound id", func(t *testing.T) {
		t.Parallel()
		var fromCtx string
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = requestid.FromContext(r.Context())
		}))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(requestid.Header, "req-abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)

		assert.Equal(t, "req-abc-123", fromCtx)
		assert.Equal(t, "req-abc-123", rec.Header().Get(requestid.Header))
	})

	t.Run("mints uuid when absent", func(t *testing.T) {
		t.Parallel()
		var fromCtx string
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = requestid.FromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		_, err := uuid.Parse(fromCtx)
		require.NoError(t, err, "generated id should be a uuid")
		assert.Equal(t, fromCtx, rec.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed inbound id", func(t *testing.T) {
		t.Parallel()
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		for _, bad := range []string{"has spaces", "semi;colon", strings.Repeat("a", 200)} {
			r := httptest.NewRequest("GET", "/", nil)
			r.Header.Set(requestid.Header, bad)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)

			echoed := rec.Header().Get(requestid.Header)
			assert.NotEqual(t, bad, echoed)
			_, err := uuid.Parse(echoed)
			assert.NoError(t, err)
		}
	})
}

func TestFromContext_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(t.Context()))
}
