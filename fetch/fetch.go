// Package fetch is the client for the remote audio retrieval service. The
// service is stateless: metadata lookup and audio stream retrieval by media
// URL. Failures degrade the app to local files only, they never take the
// scene down.
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrUnavailable marks transport level failures. Callers show a degraded
// mode notice and keep going.
var ErrUnavailable = errors.New("retrieval service unavailable")

// Info is the metadata the service returns for a media URL.
type Info struct {
	Title     string  `json:"title"`
	Duration  float64 `json:"duration"`
	Thumbnail string  `json:"thumbnail"`
	Uploader  string  `json:"uploader"`
	URL       string  `json:"url"`
}

type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, endpoint, mediaURL string) (*http.Response, error) {
	u := c.base + endpoint + "?url=" + url.QueryEscape(mediaURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request for %s", endpoint)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "%s: %v", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, errors.Wrapf(ErrUnavailable, "%s: %s", endpoint, resp.Status)
		}
		return nil, errors.Errorf("%s: %s", endpoint, resp.Status)
	}
	return resp, nil
}

// Info looks up metadata for a media URL. Idempotent and side-effect free.
func (c *Client) Info(ctx context.Context, mediaURL string) (*Info, error) {
	resp, err := c.get(ctx, "/info", mediaURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "decode info response")
	}
	return &info, nil
}

// Audio retrieves the encoded audio stream for a media URL. The caller owns
// the returned reader.
func (c *Client) Audio(ctx context.Context, mediaURL string) (io.ReadCloser, error) {
	resp, err := c.get(ctx, "/audio", mediaURL)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
