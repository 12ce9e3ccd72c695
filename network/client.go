// Package network provides the pre-configured HTTP client shared by the feed fetcher and the downloader.
package network

import (
	"net/http"
	"time"

	"github.com/castgrab/castgrab/constant"
)

// DefaultTimeout bounds a single request when no configuration is supplied.
const DefaultTimeout = 10 * time.Minute

// Client is the HTTP client shared across the application.
// Every request it sends carries the castgrab User-Agent.
var Client = New(DefaultTimeout)

// New returns a client with a tuned transport and the given overall request timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			agent: constant.UserAgent,
			next:  newTransport(),
		},
	}
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters suited to chunked downloads.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 16
	t.MaxConnsPerHost = 32
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// userAgentTransport sets the User-Agent header unless the caller already did.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(req)
}
