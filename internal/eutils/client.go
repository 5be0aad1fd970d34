package eutils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the NCBI E-utilities base URL.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	// DefaultTool identifies this application to NCBI.
	DefaultTool = "get-papers-list"
	// DefaultEmail is the contact email sent to NCBI.
	DefaultEmail = "pubmed-paper-fetcher@users.noreply.github.com"

	// DefaultMaxResponseBytes is the maximum response body size (50 MB).
	DefaultMaxResponseBytes int64 = 50 * 1024 * 1024

	// DefaultTimeout bounds each request, connect through body read.
	DefaultTimeout = 30 * time.Second
)

// Client is an HTTP client for NCBI E-utilities with common parameter
// injection and a response size guard. Construct it with NewClient; the
// zero value has no base URL or HTTP client.
type Client struct {
	BaseURL    string
	APIKey     string
	Tool       string
	Email      string
	HTTPClient *http.Client
	MaxBytes   int64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for requests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = u }
}

// WithAPIKey sets the NCBI API key sent with every request. An empty
// key leaves the api_key parameter off entirely.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.APIKey = key }
}

// WithTool sets the tool parameter for NCBI requests.
func WithTool(tool string) Option {
	return func(c *Client) { c.Tool = tool }
}

// WithEmail sets the email parameter for NCBI requests.
func WithEmail(email string) Option {
	return func(c *Client) { c.Email = email }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithMaxResponseBytes sets the maximum allowed response body size.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) { c.MaxBytes = n }
}

// NewClient creates an E-utilities client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL:  DefaultBaseURL,
		Tool:     DefaultTool,
		Email:    DefaultEmail,
		MaxBytes: DefaultMaxResponseBytes,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a single GET request with common NCBI parameters and a
// response size limit, returning the body. One request per call: a
// failed request is reported to the caller, never retried.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	// Add common NCBI params once per request.
	if c.APIKey != "" {
		params.Set("api_key", c.APIKey)
	}
	if c.Tool != "" {
		params.Set("tool", c.Tool)
	}
	if c.Email != "" {
		params.Set("email", c.Email)
	}

	u, err := url.JoinPath(c.BaseURL, endpoint)
	if err != nil {
		return nil, fmt.Errorf("building URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// url.Error embeds the full request URL, api_key included;
		// report the endpoint and the root cause only.
		var ue *url.Error
		if errors.As(err, &ue) {
			return nil, fmt.Errorf("executing request for %s: %w", endpoint, ue.Err)
		}
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NCBI returned HTTP %d for %s", resp.StatusCode, endpoint)
	}

	// Read up to MaxBytes+1 to detect oversized responses.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(body)) > c.MaxBytes {
		return nil, fmt.Errorf("response exceeds maximum size of %d bytes", c.MaxBytes)
	}

	return body, nil
}
