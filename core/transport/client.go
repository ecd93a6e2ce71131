package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// Credentials carries the optional server username and password. They are
// passed through to every request unchanged.
type Credentials struct {
	Username string
	Password string
}

// Request describes a single transfer.
type Request struct {
	// URL is the target to retrieve.
	URL string
	// NoBody requests status and headers only (a HEAD request).
	NoBody bool
	// Credentials, when non-nil, are sent as basic auth on the initial
	// request and on every redirect hop.
	Credentials *Credentials
}

// Response is the final, post-redirect result of a transfer.
type Response struct {
	// Body streams the response content. Always non-nil; empty for NoBody
	// requests. The caller must close it.
	Body io.ReadCloser
	// StatusCode is the status of the final response in the redirect chain.
	StatusCode int
	// EffectiveURL is the URL that produced the final response.
	EffectiveURL string
}

// Client is a reusable HTTP client with a run-scoped cookie jar.
type Client struct {
	hc *http.Client
}

// NewClient creates a client with a fresh, empty cookie jar and a transport
// with connection setup timeouts from the configuration.
func NewClient(cfg Config) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		hc: &http.Client{
			Jar:       jar,
			Transport: transport,
		},
	}, nil
}

// Do executes one request and returns the final response of the redirect
// chain. Redirects are followed across hosts; Go strips the Authorization
// header on cross-host hops, so the redirect policy re-applies the
// credentials on every hop.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := http.MethodGet
	if req.NoBody {
		method = http.MethodHead
	}

	hreq, err := http.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, err
	}
	if req.Credentials != nil {
		hreq.SetBasicAuth(req.Credentials.Username, req.Credentials.Password)
	}

	// Shallow copy shares the jar and transport but gets a request-scoped
	// redirect policy, so credentials never bleed between calls.
	hc := *c.hc
	hc.CheckRedirect = func(r *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		if req.Credentials != nil {
			r.SetBasicAuth(req.Credentials.Username, req.Credentials.Password)
		}
		return nil
	}

	resp, err := hc.Do(hreq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Body:         resp.Body,
		StatusCode:   resp.StatusCode,
		EffectiveURL: resp.Request.URL.String(),
	}, nil
}

// ErrorText extracts a concise message from a transport failure, unwrapping
// the url.Error envelope so ledger entries stay readable.
func ErrorText(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err.Error()
	}
	return err.Error()
}
