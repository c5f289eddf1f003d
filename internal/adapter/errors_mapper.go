package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrMovieNotFound, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrCatalogUnavailable, resp.StatusCode(), body)
	}
}

// mapTransportError wraps a failed request into ErrCatalogUnavailable. The
// request URL is reported without its query string, which carries the API
// key.
func mapTransportError(op string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = &url.Error{Op: urlErr.Op, URL: stripQuery(urlErr.URL), Err: urlErr.Err}
	}
	return fmt.Errorf("%w: %s: %w", ErrCatalogUnavailable, op, err)
}

func stripQuery(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
