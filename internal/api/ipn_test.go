package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mwondhaf/pesapal-go/internal/types"
)

func TestRegisterIPN_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/URLSetup/RegisterIPN" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer T" {
			t.Fatalf("authorization = %q", got)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["url"] != "https://example.com/ipn" || body["ipn_notification_type"] != "POST" {
			t.Fatalf("unexpected body: %v", body)
		}
		_, _ = w.Write([]byte(`{"ipn_id":"ipn-1","url":"https://example.com/ipn","status":"Active"}`))
	}))
	defer srv.Close()

	reg := types.IPNRegistration{URL: "https://example.com/ipn", NotificationType: types.NotifyPOST}
	ir, err := RegisterIPN(context.Background(), srv.Client(), srv.URL, "T", reg)
	if err != nil {
		t.Fatalf("RegisterIPN: %v", err)
	}
	if ir.IPNID != "ipn-1" || ir.URL != "https://example.com/ipn" || ir.Status != "Active" {
		t.Fatalf("unexpected response: %+v", ir)
	}
}
