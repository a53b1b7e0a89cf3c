package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servicemail/pkg/requestid"
)

func serve(t *testing.T, header string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when missing", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "")
		require.Equal(t, http.StatusOK, rec.Code)
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("keeps valid client id", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "req_abc-123")
		assert.Equal(t, "req_abc-123", seen)
		assert.Equal(t, "req_abc-123", rec.Header().Get(requestid.Header))
	})

	for _, bad := range []string{"a b", "a/b", "<script>", strings.Repeat("x", 129)} {
		t.Run("replaces invalid "+bad[:min(len(bad), 10)], func(t *testing.T) {
			t.Parallel()

			seen, _ := serve(t, bad)
			assert.NotEqual(t, bad, seen)
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
