package gocardless

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKindsAreDistinguishable(t *testing.T) {
	cause := errors.New("connection refused")
	var err error = &TransportError{Op: "send request", Err: cause}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatal("expected TransportError to match")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected TransportError to wrap its cause")
	}

	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		t.Fatal("TransportError must not match ApiError")
	}

	err = &ApiError{StatusCode: 401, Body: []byte(`{"summary":"Invalid token"}`)}
	if !errors.As(err, &apiErr) {
		t.Fatal("expected ApiError to match")
	}
	if apiErr.StatusCode != 401 {
		t.Fatalf("expected status 401, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "Invalid token") {
		t.Fatalf("expected status and body in message, got %q", err.Error())
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		t.Fatal("ApiError must not match DecodeError")
	}
}

func TestApiErrorTruncatesLongBody(t *testing.T) {
	err := &ApiError{StatusCode: 500, Body: []byte(strings.Repeat("x", 2000))}

	message := err.Error()
	if len(message) > 600 {
		t.Fatalf("expected a truncated message, got %d characters", len(message))
	}
	if !strings.HasSuffix(message, "...") {
		t.Fatalf("expected truncation marker, got %q", message[len(message)-10:])
	}
}
