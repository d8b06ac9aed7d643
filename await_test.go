package pesapal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestAwaitFinalStatus_ReturnsOnTerminalStatus(t *testing.T) {
	t.Parallel()
	var authCalls, statusCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/RequestToken", authCounting(&authCalls))
	mux.HandleFunc("/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
		status := "Pending"
		if atomic.AddInt32(&statusCalls, 1) >= 3 {
			status = "Completed"
		}
		_, _ = fmt.Fprintf(w, `{"payment_status_description":%q,"amount":1000}`, status)
	})
	c := newTestClient(t, mux)
	c.pollInterval = time.Millisecond

	st, err := c.AwaitFinalStatus(context.Background(), "tracking-1")
	if err != nil {
		t.Fatalf("AwaitFinalStatus: %v", err)
	}
	if st.PaymentStatusDescription != "Completed" {
		t.Fatalf("status = %q", st.PaymentStatusDescription)
	}
	if n := atomic.LoadInt32(&statusCalls); n != 3 {
		t.Fatalf("status lookups = %d, want 3", n)
	}
}

func TestAwaitFinalStatus_PropagatesCallErrors(t *testing.T) {
	t.Parallel()
	var authCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/RequestToken", authCounting(&authCalls))
	mux.HandleFunc("/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"upstream down"}`))
	})
	c := newTestClient(t, mux)
	c.pollInterval = time.Millisecond

	_, err := c.AwaitFinalStatus(context.Background(), "tracking-1")
	if !IsAPIError(err) {
		t.Fatalf("expected API error, got %v", err)
	}
}

func TestAwaitFinalStatus_ContextEndsPoll(t *testing.T) {
	t.Parallel()
	var authCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/RequestToken", authCounting(&authCalls))
	mux.HandleFunc("/Transactions/GetTransactionStatus", pendingStatus)
	c := newTestClient(t, mux)
	c.pollInterval = 50 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.AwaitFinalStatus(ctx, "tracking-1")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestAwaitFinalStatus_EmptyTrackingID(t *testing.T) {
	t.Parallel()
	c, err := New("ck", "cs")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()
	if _, err := c.AwaitFinalStatus(context.Background(), ""); !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
