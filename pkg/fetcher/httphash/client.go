// Package httphash provides a fetcher.Client implementation that retrieves a
// URL over plain net/http and hashes the visible content of the response.
package httphash

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"time"

	"vdpscanner/pkg/fetcher"
	"vdpscanner/pkg/serrors"
)

const (
	// DefaultUserAgent is sent when Options.UserAgent is empty.
	DefaultUserAgent = "vdp-scanner/1.0"
	// DefaultMaxBodyBytes bounds how much of a response body is hashed.
	DefaultMaxBodyBytes = 5 << 20
	// DefaultMaxRedirects mirrors the redirect cap of common HTTP libraries.
	DefaultMaxRedirects = 30
)

// Options configure the HTTP clients used for fetching.
type Options struct {
	// Timeout bounds a single fetch, including redirects and reading the body.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// MaxBodyBytes limits how many bytes of the response body are read and hashed.
	MaxBodyBytes int64
	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int
	// RootCAs overrides the system certificate pool for verified fetches.
	RootCAs *x509.CertPool
}

// Client fetches URLs with either a verifying or a non-verifying TLS
// configuration. It is safe for concurrent use.
type Client struct {
	verified     *http.Client // verified checks certificates against RootCAs
	unverified   *http.Client // unverified skips certificate verification
	userAgent    string
	maxBodyBytes int64
}

// Fetch retrieves URL and hashes the response content. Any HTTP status is a
// successful fetch. Transport failures are returned classified by Classify.
func (c *Client) Fetch(ctx context.Context, URL string, verifyTLS bool) (fetcher.Result, error) {
	httpClient := c.verified
	if !verifyTLS {
		httpClient = c.unverified
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return fetcher.Result{}, serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fetcher.Result{}, Classify(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return fetcher.Result{}, Classify(fmt.Errorf("could not read response body: %w", err))
	}

	hash, err := HashContent(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return fetcher.Result{}, serrors.Wrap(serrors.ErrInternal, err, "could not hash content")
	}

	final := resp.Request.URL

	return fetcher.Result{
		FinalURL:   final.String(),
		IsRedirect: !sameLocation(req.URL, final),
		Status:     resp.StatusCode,
		Hash:       hash,
	}, nil
}

// Ensure Client conforms to the fetcher.Client interface at compile time.
var _ fetcher.Client = (*Client)(nil)

func newHTTPClient(opts Options, insecure bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint: forcetypeassert
	transport.TLSClientConfig = &tls.Config{
		RootCAs:            opts.RootCAs,
		InsecureSkipVerify: insecure, //nolint: gosec
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= opts.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", opts.MaxRedirects)
			}

			return nil
		},
	}
}

// New constructs a Client. Zero valued options fall back to the package defaults.
func New(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = DefaultMaxRedirects
	}

	return &Client{
		verified:     newHTTPClient(opts, false),
		unverified:   newHTTPClient(opts, true),
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
	}
}
