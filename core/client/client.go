package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/adminforge/adminsdk/core/notify"
)

// TokenSource supplies the current bearer token for authenticated requests.
// Implementations return the empty string when no session is active.
// The session store satisfies this interface.
type TokenSource interface {
	Token() string
}

// Client issues HTTP requests against one configured base address and
// normalizes every outcome into a Result. Multiple clients may coexist, each
// bound to its own base address, while sharing a single TokenSource as the
// authoritative source of bearer tokens.
//
// A Client performs exactly one exchange attempt per call: no retry, backoff,
// or timeout policy beyond the caller's context.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	notifier *notify.Bus
	logger   *slog.Logger

	// authed marks a derived client returned by WithAuth. The token itself is
	// read from the TokenSource at send time, per request, so concurrent calls
	// never observe a stale or half-applied credential.
	authed bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the configured base address for this client.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource injects the bearer-token accessor used by WithAuth.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithNotifier sets the bus that receives a failure notification for every
// normalized error outcome.
func WithNotifier(bus *notify.Bus) Option {
	return func(c *Client) {
		c.notifier = bus
	}
}

// WithLogger configures structured logging for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an API client bound to the base address from cfg, or the
// WithBaseURL override when given.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: cfg.BaseURL,
		http:    http.DefaultClient,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidBaseURL
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c, nil
}

// WithAuth returns a derived client whose requests carry an
// "Authorization: Bearer <token>" header. The token is read fresh from the
// TokenSource for each request at send time; when no token is present the
// request proceeds unauthenticated, which is not an error at this layer —
// authorization failures surface later as server error responses.
//
// The derived client shares the parent's transport and configuration, so the
// idiomatic call shape is chaining:
//
//	res := api.WithAuth().Get(ctx, "/users")
func (c *Client) WithAuth() *Client {
	derived := *c
	derived.authed = true
	return &derived
}

// Get issues a GET request for the given path relative to the base address.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) Result {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) Result {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) Result {
	return c.do(ctx, http.MethodPut, path, body, opts)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) Result {
	return c.do(ctx, http.MethodPatch, path, body, opts)
}

// Delete issues a DELETE request for the given path.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) Result {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

// buildURL joins the relative path and query parameters onto the base address.
func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// encodeBody marshals a request body to JSON. A nil body yields a nil reader.
func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(raw), nil
}
