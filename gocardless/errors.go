package gocardless

import "fmt"

// TransportError means the request never completed: it could not be built,
// sent, or its response body could not be read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "gocardless: transport error during " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApiError means GoCardless answered with a non-2xx status. The raw response
// body is kept for diagnostics.
type ApiError struct {
	StatusCode int
	Body       []byte
}

func (e *ApiError) Error() string {
	body := string(e.Body)
	if len(body) > 512 {
		body = body[:512] + "..."
	}
	return fmt.Sprintf("gocardless: api error, status %d: %s", e.StatusCode, body)
}

// DecodeError means the response body did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "gocardless: cannot decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
