package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/castgrab/castgrab/util"
)

// Logger is the subset of the run logger the fetcher needs.
type Logger interface {
	Infof(format string, args ...any)
}

// FetchError reports a feed request that failed in transport or returned a non-success status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to download %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves raw feed documents.
type Fetcher struct {
	client *http.Client
	log    Logger
}

// NewFetcher returns a Fetcher issuing requests through client.
func NewFetcher(client *http.Client, log Logger) *Fetcher {
	return &Fetcher{client: client, log: log}
}

// Fetch issues a single GET for url and returns the body of a 2xx response.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.log.Infof("Downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	return string(body), nil
}
