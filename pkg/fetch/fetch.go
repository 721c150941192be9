// Package fetch retrieves remote icons from the icon API.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// IconURL builds the fetch URL for a remote icon spec of the form
// "prefix-rest". The spec splits at the first dash only; the rest may
// itself contain further dashes. A spec with no dash is malformed and
// yields ErrIconSpecInvalid.
func IconURL(apiBase, spec, color string) (string, error) {
	prefix, rest, ok := strings.Cut(spec, "-")
	if !ok || prefix == "" || rest == "" {
		return "", errors.Newf(errors.ErrIconSpecInvalid, "malformed icon spec %q, want prefix-rest", spec)
	}
	return fmt.Sprintf("%s/%s/%s%s?color=%s", apiBase, prefix, rest, constants.IconExt, color), nil
}

// HTTPFetcher is the production types.Fetcher, backed by net/http.
type HTTPFetcher struct {
	client *http.Client
}

var _ types.Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher with the given per-request timeout.
// The timeout should be generous: icons are small, but transfers are
// strictly sequential against a rate-limited API.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch issues a blocking GET and returns the response body.
// Non-2xx statuses and empty bodies are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetchFailed, "failed to build request for %s", url)
	}
	req.Header.Set("User-Agent", constants.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetchFailed, "fetch failed for %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf(errors.ErrFetchFailed, "fetch failed for %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetchFailed, "failed to read response body for %s", url)
	}
	if len(body) == 0 {
		return nil, errors.Newf(errors.ErrEmptyBody, "empty response body for %s", url)
	}
	return body, nil
}
