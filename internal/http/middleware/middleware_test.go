package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	rl "github.com/rogerio-castellano/lims-tracker/internal/http/rate_limiter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequireWriteAuth(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Minute)
	token, err := issuer.GenerateToken("admin", "operator")
	require.NoError(t, err)

	var subject string
	h := RequireWriteAuth(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = GetSubject(r)
	}))

	tests := []struct {
		name   string
		method string
		header string
		want   int
	}{
		{"read is open", http.MethodGet, "", http.StatusOK},
		{"write without token", http.MethodPost, "", http.StatusUnauthorized},
		{"write with garbage", http.MethodPost, "Bearer nope", http.StatusUnauthorized},
		{"write with wrong scheme", http.MethodPost, "Basic " + token, http.StatusUnauthorized},
		{"write with token", http.MethodPost, "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/samples", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
	assert.Equal(t, "admin", subject)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := RequestLogger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside")
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"message":"inside"`)
		assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
		assert.Contains(t, buf.String(), `"status":418`)
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, incoming)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	})
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(rl.New(1, 2), "")(ok)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/samples", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	assert.Equal(t, http.StatusOK, serve(RateLimit(nil, "")(ok), "/"))
}

func TestRateLimit_InternalKey(t *testing.T) {
	h := RateLimit(rl.New(1, 1), "k1")(ok)
	call := func(key string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/samples", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		if key != "" {
			req.Header.Set(InternalKeyHeader, key)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, call("k1"))
	}
	assert.Equal(t, http.StatusOK, call(""), "internal calls do not spend the bucket")
	assert.Equal(t, http.StatusTooManyRequests, call(""))
	assert.Equal(t, http.StatusTooManyRequests, call("wrong"))

	// an empty key exempts nobody
	open := RateLimit(rl.New(1, 1), "")(ok)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(InternalKeyHeader, "")
	open.ServeHTTP(httptest.NewRecorder(), req)
	w := httptest.NewRecorder()
	open.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestMetrics_RoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/samples/{id}", ok)

	assert.Equal(t, http.StatusOK, serve(r, "/api/samples/7"))
	assert.Equal(t, http.StatusNotFound, serve(r, "/nope"))
}

func serve(h http.Handler, path string) int {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code
}
