package contracts

import (
	"context"
	"io"
	"net/url"
)

// Transport talks to the analysis backend. out may be nil to discard the
// response body. Failures are always *exceptions.CustomError.
type Transport interface {
	Do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error
	Get(ctx context.Context, path string, out interface{}) error
	PostForm(ctx context.Context, path string, form url.Values, out interface{}) error
	PostJSON(ctx context.Context, path string, payload interface{}, out interface{}) error
}
