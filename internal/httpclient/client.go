// Package httpclient is the HTTP transport used to query registries. It wraps
// a retrying client and applies request modifiers (authentication, headers)
// before every attempt.
package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/harness/pubcheck/util/common/errors"
)

// maxBody bounds how much of a response body is buffered.
const maxBody = 4 << 20

// Modifier modifies the request before it is sent.
type Modifier interface {
	Modify(*http.Request) error
}

// ModifierFunc adapts a function to Modifier.
type ModifierFunc func(*http.Request) error

func (f ModifierFunc) Modify(req *http.Request) error { return f(req) }

// Options configures a Client.
type Options struct {
	// Retries is the number of extra attempts on connection errors and 5xx.
	Retries int
	// Timeout applies to each attempt.
	Timeout time.Duration
	// UserAgent is sent with every request when set.
	UserAgent string
}

// Client is a util for registry GET requests.
type Client struct {
	client    *retryablehttp.Client
	userAgent string
}

// NewClient creates an instance of Client.
func NewClient(opts Options) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.Retries
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = opts.Timeout
	rc.Logger = leveledLogger{}
	// Hand the final response back instead of an opaque "giving up" error so
	// the status code stays visible.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{client: rc, userAgent: opts.UserAgent}
}

// Response is a fully read response.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Get issues a GET request after applying modifiers. Transport failures are
// returned as errors; any HTTP status is returned in the Response.
func (c *Client) Get(ctx context.Context, url string, modifiers ...Modifier) (*Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for _, m := range modifiers {
		if err := m.Modify(req.Request); err != nil {
			return nil, err
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// GetOK is Get but treats a non-2xx status as an error.
func (c *Client) GetOK(ctx context.Context, url string, modifiers ...Modifier) ([]byte, error) {
	resp, err := c.Get(ctx, url, modifiers...)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, errors.NewStatusError(url, resp.StatusCode)
	}
	return resp.Body, nil
}
