package dataset

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Fetcher retrieves the dataset CSV from an HTTP source. It exists so the
// server can bootstrap from a shared artifact store instead of a local file;
// the parsed table goes through the same validation as Load.
type Fetcher struct {
	endpoint *url.URL
	client   *http.Client
	logger   *log.Logger
}

// NewFetcher constructs an HTTP-backed dataset fetcher.
func NewFetcher(rawURL string, timeout time.Duration, logger *log.Logger) (*Fetcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse dataset url: %w", err)
	}
	return &Fetcher{
		endpoint: parsed,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

// Fetch downloads and parses the CSV. Any non-200 response is a LoadError with
// the missing-file kind so callers treat it like an absent local file.
func (f *Fetcher) Fetch(ctx context.Context) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &LoadError{Kind: KindMissingFile, Source: f.endpoint.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Printf("dataset: unexpected status %d fetching %s", resp.StatusCode, f.endpoint)
		return nil, &LoadError{
			Kind:   KindMissingFile,
			Source: f.endpoint.String(),
			Err:    fmt.Errorf("upstream returned %d", resp.StatusCode),
		}
	}

	table, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	f.logger.Printf("dataset: fetched %d rows from %s", table.Len(), f.endpoint)
	return table, nil
}
