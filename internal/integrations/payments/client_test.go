package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Options{
		SecretKey: "sk_test_123",
		Currency:  "eur",
		URL:       srv.URL,
		Timeout:   time.Second,
	}, nopLogger{})
}

func TestClient_Capture(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents/pi_123/capture", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "3600", r.PostForm.Get("amount_to_capture"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"succeeded","currency":"eur","amount_received":3600}`))
	})

	require.NoError(t, client.Capture(testContext(t), "pi_123", 36))
}

func TestClient_Capture_Declined(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	})

	err := client.Capture(testContext(t), "pi_123", 18)
	assert.ErrorIs(t, err, ErrCaptureFailed)
}

func TestClient_Capture_NotSucceeded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"processing"}`))
	})

	err := client.Capture(testContext(t), "pi_123", 18)
	assert.ErrorIs(t, err, ErrNotSucceeded)
}

func TestClient_Capture_InvalidAmount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("stripe must not be called")
	})

	assert.ErrorIs(t, client.Capture(testContext(t), "pi_123", 0), ErrInvalidAmount)
}

func TestClient_Capture_HonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Options{SecretKey: "sk_test_123", URL: srv.URL, Timeout: 5 * time.Second}, nopLogger{})

	ctx, cancel := context.WithTimeout(testContext(t), 50*time.Millisecond)
	defer cancel()

	started := time.Now()
	err := client.Capture(ctx, "pi_123", 18)
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.Less(t, time.Since(started), time.Second)
}

func TestClient_Refund(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/refunds", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "pi_123", r.PostForm.Get("payment_intent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re_1","object":"refund","status":"succeeded","payment_intent":"pi_123","amount":1800}`))
	})

	require.NoError(t, client.Refund(testContext(t), "pi_123"))
}

func TestClient_Refund_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"charge_already_refunded","message":"Already refunded."}}`))
	})

	assert.ErrorIs(t, client.Refund(testContext(t), "pi_123"), ErrRefundFailed)
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1800), toMinorUnits(18))
	assert.Equal(t, int64(1999), toMinorUnits(19.99))
	assert.Equal(t, int64(0), toMinorUnits(0))
}
