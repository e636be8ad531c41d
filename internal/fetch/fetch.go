// Package fetch retrieves a rendered transcript page over HTTP and parses
// it into an HTML node tree.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Config holds configuration options for the fetcher.
type Config struct {
	// UserAgent is the User-Agent header value sent with HTTP requests
	UserAgent string
	// Timeout specifies the maximum duration to wait for an HTTP request to complete
	Timeout time.Duration
}

// DefaultConfig returns a default configuration with reasonable values.
func DefaultConfig() *Config {
	return &Config{
		UserAgent: "Mozilla/5.0 (compatible; ChatdownFetcher/1.0)",
		Timeout:   10 * time.Second,
	}
}

// Fetcher downloads and parses transcript pages.
type Fetcher struct {
	Config *Config
	client *http.Client
}

// New creates a new fetcher. If config is nil, default configuration is used.
func New(config *Config) *Fetcher {
	if config == nil {
		config = DefaultConfig()
	}
	return &Fetcher{
		Config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Page fetches the URL and parses the response body as HTML.
func (f *Fetcher) Page(urlStr string) (*html.Node, error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.Config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/html") {
		return nil, fmt.Errorf("not HTML content: %s", contentType)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
