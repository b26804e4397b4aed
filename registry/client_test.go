package registry_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocknamehq/blockname-go/basicauth"
	"github.com/blocknamehq/blockname-go/registry"
)

func testCredentials() basicauth.Credentials {
	return basicauth.New("test-app-id", "test-app-secret")
}

func testEndpoints(baseURL string) registry.Endpoints {
	return registry.Endpoints{
		Users:        baseURL + "/users",
		Search:       baseURL + "/search?query=",
		Transactions: baseURL + "/transactions",
		Addresses:    baseURL + "/addresses",
		Domains:      baseURL + "/domains",
	}
}

type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// newCaptureServer records every request it receives and answers 200 with
// an empty JSON object.
func newCaptureServer(t *testing.T) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var captured []capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)

		captured = append(captured, capturedRequest{
			Method:   req.Method,
			Path:     req.URL.Path,
			RawQuery: req.URL.RawQuery,
			Header:   req.Header.Clone(),
			Body:     body,
		})

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	t.Cleanup(server.Close)

	return server, &captured
}

func newTestClient(server *httptest.Server, opts ...registry.Option) *registry.Client {
	allOpts := append([]registry.Option{registry.WithEndpoints(testEndpoints(server.URL))}, opts...)

	return registry.New(testCredentials(), allOpts...)
}

func TestNew_UsesDefaultEndpoints(t *testing.T) {
	t.Parallel()

	client := registry.New(testCredentials())

	require.Equal(t, registry.DefaultEndpoints(), client.Endpoints())
}

func TestClient_EveryOperationCarriesAuthAndContentTypeHeaders(t *testing.T) {
	t.Parallel()

	operations := map[string]func(context.Context, *registry.Client) ([]byte, error){
		"lookup": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.LookupUsers(ctx, []string{"alice"})
		},
		"search": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.Search(ctx, "twitter:alice")
		},
		"register": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.RegisterUser(ctx, "alice", "1A2b3C", nil)
		},
		"update": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.UpdateUser(ctx, "alice", registry.Profile{}, "pubkey")
		},
		"transfer": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.TransferUser(ctx, "alice", "1A2b3C", "pubkey")
		},
		"all users": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.AllUsers(ctx)
		},
		"broadcast": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.BroadcastTransaction(ctx, "deadbeef01")
		},
		"unspents": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.UnspentOutputs(ctx, "1A2b3C")
		},
		"names owned": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.NamesOwned(ctx, "1A2b3C")
		},
		"dkim": func(ctx context.Context, c *registry.Client) ([]byte, error) {
			return c.DKIMPublicKey(ctx, "example.com")
		},
	}

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("test-app-id:test-app-secret"))

	for name, operation := range operations {
		operation := operation
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server, captured := newCaptureServer(t)
			client := newTestClient(server)

			_, err := operation(context.Background(), client)
			require.NoError(t, err)

			require.Len(t, *captured, 1)

			req := (*captured)[0]
			assert.Equal(t, wantAuth, req.Header.Get("Authorization"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
		})
	}
}

func TestClient_MissingCredentials_FailsBeforeSending(t *testing.T) {
	t.Parallel()

	server, captured := newCaptureServer(t)
	client := registry.New(
		basicauth.New("", ""),
		registry.WithEndpoints(testEndpoints(server.URL)),
	)

	payload, err := client.AllUsers(context.Background())

	require.ErrorIs(t, err, registry.ErrAuthFailed)
	require.ErrorIs(t, err, basicauth.ErrMissingCredentials)
	require.Nil(t, payload)
	require.Empty(t, *captured)
}

func TestClient_TransportFailure_ReturnsErrorAndNoPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close() // connection refused from here on

	client := newTestClient(server)

	payload, err := client.LookupUsers(context.Background(), []string{"alice"})

	require.ErrorIs(t, err, registry.ErrRequestFailed)
	require.Nil(t, payload)
}

func TestClient_EncodeFailure_ReturnsExplicitError(t *testing.T) {
	t.Parallel()

	server, captured := newCaptureServer(t)
	client := newTestClient(server)

	// channels have no JSON representation
	profile := registry.Profile{"bad": make(chan int)}

	payload, err := client.RegisterUser(context.Background(), "alice", "1A2b3C", profile)

	require.ErrorIs(t, err, registry.ErrEncodeBody)
	require.Nil(t, payload)
	require.Empty(t, *captured)
}

func TestClient_DeliversErrorStatusBodyAsPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"username not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	payload, err := client.LookupUsers(context.Background(), []string{"nobody"})

	require.NoError(t, err)
	require.JSONEq(t, `{"error":"username not found"}`, string(payload))
}

func TestClient_MaxResponseSize(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("a"), 1024))
	}))
	defer server.Close()

	client := newTestClient(server, registry.WithMaxResponseSize(100))

	payload, err := client.AllUsers(context.Background())

	require.ErrorIs(t, err, registry.ErrResponseTooLarge)
	require.Nil(t, payload)
}

type requestIDKey struct{}

func TestClient_RequestIDFromContext(t *testing.T) {
	t.Parallel()

	server, captured := newCaptureServer(t)
	client := newTestClient(server, registry.WithRequestIDKey(requestIDKey{}))

	ctx := context.WithValue(context.Background(), requestIDKey{}, "ctx-request-id")

	_, err := client.AllUsers(ctx)
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	require.Equal(t, "ctx-request-id", (*captured)[0].Header.Get("X-Request-ID"))
}

func TestClient_PerRequestOptions(t *testing.T) {
	t.Parallel()

	server, captured := newCaptureServer(t)
	client := newTestClient(server)

	_, err := client.AllUsers(
		context.Background(),
		registry.WithRequestHeader("X-Custom", "value"),
		registry.WithRequestID("explicit-id"),
		registry.WithQuery("page", "2"),
	)
	require.NoError(t, err)

	require.Len(t, *captured, 1)

	req := (*captured)[0]
	assert.Equal(t, "value", req.Header.Get("X-Custom"))
	assert.Equal(t, "explicit-id", req.Header.Get("X-Request-ID"))
	assert.Equal(t, "page=2", req.RawQuery)
}

func TestClient_LogsRequestWithoutCredentials(t *testing.T) {
	t.Parallel()

	server, _ := newCaptureServer(t)

	var logBuf bytes.Buffer

	logger := zerolog.New(&logBuf).Level(zerolog.DebugLevel)
	client := newTestClient(server, registry.WithLogger(logger))

	_, err := client.AllUsers(context.Background())
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))

	assert.Equal(t, "registry request completed", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.NotContains(t, logBuf.String(), "test-app-secret")
}
