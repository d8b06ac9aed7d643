// Package api issues the individual Pesapal gateway calls. Each
// function performs exactly one HTTP exchange; there are no retries at
// this layer or above it, callers re-invoke when they want another
// attempt.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
)

type request struct {
	method   string
	endpoint string // relative to the base URL, e.g. "Auth/RequestToken"
	query    url.Values
	body     any
	bearer   string // empty for the unauthenticated token exchange
}

// send performs one request against the gateway and returns the raw JSON
// payload. Failures of any shape map to the API error kind: transport
// errors, non-2xx statuses, bodies that are not JSON, and parsed bodies
// carrying an error object.
func send(ctx context.Context, hc *http.Client, baseURL string, r request) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/%s", baseURL, r.endpoint)
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var rd io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, apierr.Wrap("encoding request body", err)
		}
		rd = bytes.NewReader(b)
	}
	httpReq, err := http.NewRequestWithContext(ctx, r.method, u, rd)
	if err != nil {
		return nil, apierr.Wrap("building request", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if r.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if r.bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.bearer)
	}

	requestsTotal.WithLabelValues(r.endpoint).Inc()
	resp, err := hc.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(r.endpoint).Inc()
		return nil, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		requestFailuresTotal.WithLabelValues(r.endpoint).Inc()
		return nil, apierr.Wrap("reading response body", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		requestFailuresTotal.WithLabelValues(r.endpoint).Inc()
		return nil, httpError(resp.StatusCode, raw)
	}
	payload, err := decodePayload(raw)
	if err != nil {
		requestFailuresTotal.WithLabelValues(r.endpoint).Inc()
		return nil, err
	}
	return payload, nil
}

// transportError keeps timeouts and connection failures distinguishable
// by message while surfacing both as the API error kind.
func transportError(err error) *apierr.Error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return apierr.Wrap("request timed out", err)
	}
	return apierr.Wrap("connection failed", err)
}

// httpError shapes a non-2xx reply, lifting a message out of the body
// when one parses.
func httpError(status int, raw []byte) *apierr.Error {
	msg := fmt.Sprintf("HTTP %d error", status)
	var body struct {
		Message string `json:"message"`
		Error   *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.Message != "":
			msg += ": " + body.Message
		case body.Error != nil && body.Error.Message != "":
			msg += ": " + body.Error.Message
		}
	}
	return &apierr.Error{Message: msg, StatusCode: status, Raw: raw}
}

// decodePayload verifies the body is JSON and rejects 2xx replies that
// still carry an error object, which the gateway produces for business
// failures.
func decodePayload(raw []byte) (json.RawMessage, error) {
	if !json.Valid(raw) {
		return nil, &apierr.Error{Message: "invalid JSON response", Raw: raw}
	}
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	// Non-object payloads simply fail this unmarshal and pass through.
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Error) > 0 && string(env.Error) != "null" {
		return nil, &apierr.Error{Message: "API error: " + errorMessage(env.Error), Raw: raw}
	}
	return raw, nil
}

func errorMessage(raw json.RawMessage) string {
	var obj struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &obj) == nil && obj.Message != "" {
		return obj.Message
	}
	var s string
	if json.Unmarshal(raw, &s) == nil && s != "" {
		return s
	}
	return "unknown API error"
}
