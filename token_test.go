package pesapal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// newTestClient points a client at an httptest gateway.
func newTestClient(t *testing.T, h http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)
	c, err := New("ck", "cs", opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// authCounting serves Auth/RequestToken and counts how often it is hit.
func authCounting(calls *int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		_, _ = w.Write([]byte(`{"token":"T","expiryDate":3600}`))
	}
}

func pendingStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(`{"payment_status_description":"Pending"}`))
}

func TestToken_ReturnsGatewayToken(t *testing.T) {
	t.Parallel()
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/RequestToken", authCounting(&calls))
	c := newTestClient(t, mux)

	tok, err := c.Token(context.Background(), false)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok != "T" {
		t.Fatalf("token = %q, want T", tok)
	}
}

func TestToken_ReusedWithinValidityWindow(t *testing.T) {
	t.Parallel()
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/RequestToken", authCounting(&calls))
	mux.HandleFunc("/Transactions/GetTransactionStatus", pendingStatus)
	c := newTestClient(t, mux)

	for i := 0; i < 2; i++ {
		if _, err := c.TransactionStatus(context.Background(), "tracking-1"); err != nil {
			t.Fatalf("TransactionStatus #%d: %v", i+1, err)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("auth requests = %d, want 1", n)
	}
}

func TestToken_RefreshedAfterExpiry(t *testing.T) {
	t.Parallel()
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/RequestToken", authCounting(&calls))
	mux.HandleFunc("/Transactions/GetTransactionStatus", pendingStatus)
	c := newTestClient(t, mux)

	if _, err := c.TransactionStatus(context.Background(), "tracking-1"); err != nil {
		t.Fatalf("TransactionStatus: %v", err)
	}
	// Move the clock past the one-hour expiry.
	base := time.Now()
	c.now = func() time.Time { return base.Add(2 * time.Hour) }

	if _, err := c.TransactionStatus(context.Background(), "tracking-1"); err != nil {
		t.Fatalf("TransactionStatus after expiry: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("auth requests = %d, want 2", n)
	}
}

func TestToken_ForceRefresh(t *testing.T) {
	t.Parallel()
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/RequestToken", authCounting(&calls))
	c := newTestClient(t, mux)

	if _, err := c.Token(context.Background(), false); err != nil {
		t.Fatalf("Token: %v", err)
	}
	if _, err := c.Token(context.Background(), true); err != nil {
		t.Fatalf("forced Token: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("auth requests = %d, want 2", n)
	}
}

func TestToken_AuthFailureSurfacesAPIError(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad creds"}`))
	})
	c := newTestClient(t, mux)

	_, err := c.Token(context.Background(), false)
	if !IsAPIError(err) {
		t.Fatalf("expected API error kind, got %v", err)
	}
	if IsValidationError(err) {
		t.Fatalf("auth failure misclassified as validation: %v", err)
	}
}
