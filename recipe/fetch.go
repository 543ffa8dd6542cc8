package recipe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const fetchAccept = "application/yaml, application/json;q=0.9, text/plain;q=0.5"

// FetchRequest configures Fetch. A nil Client uses http.DefaultClient.
type FetchRequest struct {
	URL    string
	Client *http.Client
}

// Fetch downloads a recipe over HTTP(S) and decodes it. Responses outside
// the 2xx range and bodies larger than MaxSize are errors.
func Fetch(ctx context.Context, req FetchRequest) (*Recipe, error) {
	httpReq, err := newFetchRequest(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("recipe fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("recipe fetch: %s: status %s", httpReq.URL.Redacted(), resp.Status)
	}
	if resp.ContentLength > MaxSize {
		return nil, fmt.Errorf("recipe fetch: %w (%d bytes)", ErrTooLarge, resp.ContentLength)
	}
	return Decode(resp.Body)
}

func newFetchRequest(ctx context.Context, raw string) (*http.Request, error) {
	if raw == "" {
		return nil, fmt.Errorf("recipe fetch: URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("recipe fetch: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("recipe fetch: unsupported scheme %q", u.Scheme)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("recipe fetch: %w", err)
	}
	httpReq.Header.Set("Accept", fetchAccept)
	return httpReq, nil
}
