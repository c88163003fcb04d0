package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	path   string
	status int
}

type fakeMetrics struct {
	mu  sync.Mutex
	obs []observation
}

func (f *fakeMetrics) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = append(f.obs, observation{method: method, path: path, status: status})
}

type fakeSessions struct {
	authenticated bool
}

func (f fakeSessions) IsAuthenticated(*http.Request) bool { return f.authenticated }

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)
	r.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/rec42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

	require.Len(t, m.obs, 2)
	assert.Equal(t, observation{http.MethodDelete, "/api/v1/admin/bookings/{bookingId}", http.StatusNoContent}, m.obs[0])
	assert.Equal(t, observation{http.MethodGet, "/api/v1/bookings", http.StatusOK}, m.obs[1])
}

func TestRequireAdmin(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireAdmin(fakeSessions{}, nopLogger{})(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgAdminRequired)
	assert.False(t, called)

	rec = httptest.NewRecorder()
	RequireAdmin(fakeSessions{authenticated: true}, nopLogger{})(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
