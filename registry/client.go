// Package registry is a client SDK for the Blockname identity/naming
// registry HTTP API. Every operation builds a request against one of the
// registry's endpoint families (users, search, transactions, addresses,
// domains), attaches a Basic Authorization header derived from an app
// id/secret pair, and returns the raw response payload.
//
// The client does not parse, validate, or classify response contents.
// Responses are arbitrary JSON defined by the registry's own contract,
// including error responses: a non-2xx body is delivered to the caller the
// same way a success body is. Interpreting the payload is the caller's
// responsibility.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blocknamehq/blockname-go/basicauth"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// CredentialProvider derives the Authorization header value attached to
// every request. It must fail rather than produce a header from absent
// credentials.
type CredentialProvider interface {
	HeaderValue() (string, error)
}

var (
	_ Doer               = (*http.Client)(nil)
	_ CredentialProvider = basicauth.Credentials{}
)

type Client struct {
	endpoints       Endpoints
	httpClient      Doer
	creds           CredentialProvider
	requestIDKey    any
	defaultHeaders  map[string]string
	log             zerolog.Logger
	maxResponseSize int64 // 0 means no limit
}

// New builds a client for the default (mainnet) endpoints using the given
// credential pair. The credentials are immutable and shared by all
// operations; everything else about a request is local to each call, so a
// single client is safe for concurrent use.
func New(creds basicauth.Credentials, opts ...Option) *Client {
	c := &Client{
		endpoints: DefaultEndpoints(),
		httpClient: &http.Client{ //nolint:exhaustruct
			Timeout: DefaultTimeout,
		},
		creds:        creds,
		requestIDKey: nil,
		defaultHeaders: map[string]string{
			HeaderContentType: ContentTypeJSON,
		},
		log:             zerolog.Nop(),
		maxResponseSize: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// get issues a GET request against a fully composed endpoint URL.
func (c *Client) get(ctx context.Context, endpoint string, opts ...RequestOption) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, opts...)
}

// post serializes body as JSON and issues a POST request against a fully
// composed endpoint URL.
func (c *Client) post(ctx context.Context, endpoint string, body any, opts ...RequestOption) ([]byte, error) {
	return c.do(ctx, http.MethodPost, endpoint, body, opts...)
}

func (c *Client) do(
	ctx context.Context,
	method string,
	endpoint string,
	body any,
	opts ...RequestOption,
) ([]byte, error) {
	cfg := c.buildRequestConfig(ctx, opts...)

	reqCtx := ctx

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	authValue, err := c.creds.HeaderValue()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	cfg.headers[HeaderAuthorization] = authValue

	req, err := c.buildRequest(reqCtx, method, endpoint, body, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	payload, err := c.readPayload(resp)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("method", method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Int("size", len(payload)).
		Str("latency", time.Since(start).String()).
		Str("request_id", cfg.requestID).
		Msg("registry request completed")

	return payload, nil
}

func (c *Client) buildRequestConfig(ctx context.Context, opts ...RequestOption) *requestConfig {
	cfg := &requestConfig{
		headers:   make(map[string]string),
		query:     nil,
		timeout:   0,
		requestID: "",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.requestID == "" {
		cfg.requestID = c.extractRequestID(ctx)
	}

	return cfg
}

func (c *Client) extractRequestID(ctx context.Context) string {
	if c.requestIDKey != nil {
		if id, ok := ctx.Value(c.requestIDKey).(string); ok && id != "" {
			return id
		}
	}

	return uuid.New().String()
}

func (c *Client) buildRequest(
	ctx context.Context,
	method string,
	endpoint string,
	body any,
	cfg *requestConfig,
) (*http.Request, error) {
	fullURL := appendQuery(endpoint, cfg.query)

	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}

	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}

	if cfg.requestID != "" {
		req.Header.Set(HeaderXRequestID, cfg.requestID)
	}

	return req, nil
}

// readPayload reads the response body as opaque bytes. HTTP status is not
// interpreted here: the registry encodes its errors in the JSON body, and
// classifying them belongs to the caller.
func (c *Client) readPayload(resp *http.Response) ([]byte, error) {
	body := io.Reader(resp.Body)
	if c.maxResponseSize > 0 {
		body = io.LimitReader(resp.Body, c.maxResponseSize+1)
	}

	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadResponse, err)
	}

	if c.maxResponseSize > 0 && int64(len(payload)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return payload, nil
}

// appendQuery attaches optional per-request query parameters. Endpoint
// URLs themselves are composed by plain concatenation and are never
// escaped; only explicitly supplied parameters go through url.Values.
func appendQuery(endpoint string, query map[string]string) string {
	if len(query) == 0 {
		return endpoint
	}

	params := url.Values{}
	for k, v := range query {
		params.Add(k, v)
	}

	return endpoint + "?" + params.Encode()
}
