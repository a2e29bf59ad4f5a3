package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCredentials struct {
	mu         sync.Mutex
	credential string
	clears     int
}

func (f *fakeCredentials) CurrentCredential() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.credential
}

func (f *fakeCredentials) ClearCredential(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credential = ""
	f.clears++
	return nil
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestTransportClient_BearerHeader(t *testing.T) {
	var seen []string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(constvars.HeaderAuthorization))
		w.Write([]byte(`{"ok":true}`))
	})

	t.Run("attaches bearer when credential present", func(t *testing.T) {
		credentials := &fakeCredentials{credential: "abc"}
		client := NewTransportClient(server.URL, time.Second, credentials, zap.NewNop())

		err := client.Get(context.Background(), "scales", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer abc", seen[len(seen)-1])
	})

	t.Run("omits header without credential", func(t *testing.T) {
		client := NewTransportClient(server.URL, time.Second, &fakeCredentials{}, zap.NewNop())

		err := client.Get(context.Background(), "scales", nil)
		require.NoError(t, err)
		assert.Empty(t, seen[len(seen)-1])
	})

	t.Run("nil credential source", func(t *testing.T) {
		client := NewTransportClient(server.URL, time.Second, nil, zap.NewNop())

		err := client.Get(context.Background(), "scales", nil)
		require.NoError(t, err)
		assert.Empty(t, seen[len(seen)-1])
	})
}

func TestTransportClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    exceptions.ErrorKind
		wantMessage string
		wantClears  int
	}{
		{name: "unauthorized", status: 401, body: `{"detail":"Could not validate credentials"}`, wantKind: exceptions.KindUnauthorized, wantMessage: constvars.ErrClientNotLoggedIn, wantClears: 1},
		{name: "forbidden", status: 403, body: `{"detail":"Not enough permissions"}`, wantKind: exceptions.KindForbidden, wantMessage: constvars.ErrClientNotAuthorized, wantClears: 1},
		{name: "not found", status: 404, body: `{"detail":"Submission not found"}`, wantKind: exceptions.KindNotFound, wantMessage: constvars.ErrClientResourceNotFound},
		{name: "server error with string detail", status: 500, body: `{"detail":"model crashed"}`, wantKind: exceptions.KindServerError, wantMessage: "model crashed"},
		{name: "validation list detail", status: 422, body: `{"detail":[{"loc":["body","scale_type"],"msg":"field required"},{"msg":"value is not a valid integer"}]}`, wantKind: exceptions.KindServerError, wantMessage: "field required; value is not a valid integer"},
		{name: "non json error body", status: 502, body: `<html>bad gateway</html>`, wantKind: exceptions.KindServerError, wantMessage: constvars.ErrClientAnalysisServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			credentials := &fakeCredentials{credential: "abc"}
			client := NewTransportClient(server.URL, time.Second, credentials, zap.NewNop())

			err := client.Get(context.Background(), "reports/1", &map[string]interface{}{})

			require.Error(t, err)
			customErr, ok := err.(*exceptions.CustomError)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, customErr.Kind)
			assert.Equal(t, tt.wantMessage, customErr.Detail())
			assert.Equal(t, tt.wantClears, credentials.clears)
			if tt.wantClears > 0 {
				assert.Empty(t, credentials.CurrentCredential())
			} else {
				assert.Equal(t, "abc", credentials.CurrentCredential())
			}
		})
	}
}

func TestTransportClient_UnauthorizedThenHeaderOmitted(t *testing.T) {
	var headers []string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get(constvars.HeaderAuthorization))
		if len(headers) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{}`))
	})
	credentials := &fakeCredentials{credential: "stale"}
	client := NewTransportClient(server.URL, time.Second, credentials, zap.NewNop())

	err := client.Get(context.Background(), "auth/users/me", nil)
	assert.True(t, exceptions.IsKind(err, exceptions.KindUnauthorized))

	err = client.Get(context.Background(), "scales", nil)
	require.NoError(t, err)

	require.Len(t, headers, 2)
	assert.Equal(t, "Bearer stale", headers[0])
	assert.Empty(t, headers[1])
}

func TestTransportClient_NetworkUnreachable(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)
		client := NewTransportClient(server.URL, 50*time.Millisecond, nil, zap.NewNop())

		err := client.Get(context.Background(), "reports/1/status", nil)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNetworkUnreachable))
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusGatewayTimeout, customErr.StatusCode)
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		baseUrl := server.URL
		server.Close()
		client := NewTransportClient(baseUrl, time.Second, nil, zap.NewNop())

		err := client.Get(context.Background(), "scales", nil)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNetworkUnreachable))
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})
		client := NewTransportClient(server.URL, time.Second, nil, zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := client.Get(ctx, "scales", nil)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNetworkUnreachable))
	})
}

func TestTransportClient_InvalidResponseShape(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/empty" {
			return
		}
		w.Write([]byte(`{"status": [`))
	})
	client := NewTransportClient(server.URL, time.Second, nil, zap.NewNop())

	var out struct {
		Status string `json:"status"`
	}
	err := client.Get(context.Background(), "broken", &out)
	assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidResponseShape))

	err = client.Get(context.Background(), "empty", &out)
	assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidResponseShape))
}

func TestTransportClient_RequestShape(t *testing.T) {
	type captured struct {
		method      string
		path        string
		contentType string
		requestID   string
		form        url.Values
	}
	var got captured
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		got = captured{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get(constvars.HeaderContentType),
			requestID:   r.Header.Get(constvars.HeaderXRequestID),
			form:        r.PostForm,
		}
		w.Write([]byte(`{"access_token":"t","token_type":"bearer"}`))
	})
	client := NewTransportClient(server.URL+"/api/v1/", time.Second, nil, zap.NewNop())
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := client.PostForm(ctx, "auth/token", url.Values{"username": {"alice"}, "password": {"secret"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "t", out.AccessToken)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/v1/auth/token", got.path)
	assert.Equal(t, constvars.MIMEApplicationForm, got.contentType)
	assert.Equal(t, "req-1", got.requestID)
	assert.Equal(t, "alice", got.form.Get("username"))
}

func TestExtractErrorDetail(t *testing.T) {
	assert.Equal(t, "bad", ExtractErrorDetail([]byte(`{"detail":"bad"}`)))
	assert.Equal(t, "a; b", ExtractErrorDetail([]byte(`{"detail":[{"msg":"a"},"b"]}`)))
	assert.Equal(t, "oops", ExtractErrorDetail([]byte(`{"message":"oops"}`)))
	assert.Equal(t, "", ExtractErrorDetail([]byte(`not json`)))
	assert.Equal(t, "", ExtractErrorDetail([]byte(`{}`)))
}
