package ports

import "context"

// HTTPClient defines the HTTP primitives used to fetch release metadata and artifacts.
// A non-2xx status is reported through the returned status code, not as an error.
//
//go:generate go run go.uber.org/mock/mockgen -source=http.go -destination=mocks/mock_http.go -package=mocks
type HTTPClient interface {
	// GetJSON fetches url and decodes a successful response body into v.
	GetJSON(ctx context.Context, url string, v any) (int, error)

	// GetBytes fetches url and returns the raw response body.
	GetBytes(ctx context.Context, url string) (int, []byte, error)
}
