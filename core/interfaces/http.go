package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations (standard library, retryable client, etc.)
// Both upstream APIs are POST-only, so that is the whole contract.
type HTTPClient interface {
	// Post performs an HTTP POST request with a JSON body and the given
	// extra headers. Headers may be nil. The upstream APIs this service
	// talks to authenticate via request headers, so they are part of the
	// contract rather than hidden in implementations.
	Post(ctx context.Context, url string, headers map[string]string, body io.Reader) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	Header(key string) string
}
