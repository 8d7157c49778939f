package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/nncsumb/moviePlaylist/models"
)

const (
	// DefaultBaseURL points at the public Cinemeta instance.
	DefaultBaseURL = "https://v3-cinemeta.strem.io"

	transportAttempts = 3
)

// ErrCatalogUnavailable marks a failed catalog request: transport failure or a
// non-success status. Callers must not treat it as an empty result.
var ErrCatalogUnavailable = errors.New("metadata catalog unavailable")

// Client issues batched metadata lookups and title searches against a
// Cinemeta-compatible catalog.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type detailedResponse struct {
	MetasDetailed []models.MetadataRecord `json:"metasDetailed"`
}

type searchResponse struct {
	Metas []models.MetaSummary `json:"metas"`
}

// NewClient creates a catalog client. An empty baseURL selects the public
// Cinemeta endpoint; a zero timeout defaults to 15 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchMetadata retrieves detailed records for the given content ids in one
// batched request. An empty id set returns immediately without touching the
// network. Records may be missing for ids the catalog does not know; that is
// not an error.
func (c *Client) FetchMetadata(ctx context.Context, contentIds []string, contentType models.ContentType) ([]models.MetadataRecord, error) {
	if len(contentIds) == 0 {
		return nil, nil
	}

	requestURL := fmt.Sprintf("%s/catalog/%s/last-videos/lastVideosIds=%s.json",
		c.baseURL, contentType, strings.Join(contentIds, ","))

	var result detailedResponse
	if err := c.getJSON(ctx, requestURL, &result); err != nil {
		return nil, err
	}

	return result.MetasDetailed, nil
}

// Search queries the catalog's top list for titles matching the term and
// returns summary records whose ids feed FetchMetadata.
func (c *Client) Search(ctx context.Context, term string, contentType models.ContentType) ([]models.MetaSummary, error) {
	requestURL := fmt.Sprintf("%s/catalog/%s/top/search=%s.json",
		c.baseURL, contentType, url.PathEscape(term))

	var result searchResponse
	if err := c.getJSON(ctx, requestURL, &result); err != nil {
		return nil, err
	}

	return result.Metas, nil
}

// getJSON performs a GET and decodes the body into out. Transport failures
// are retried a few times; a non-2xx status is never retried and maps
// straight to ErrCatalogUnavailable so a 503 fails fast.
func (c *Client) getJSON(ctx context.Context, requestURL string, out any) error {
	var resp *http.Response
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create request: %w", err))
			}
			r, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("catalog request: %w", err)
			}
			resp = r
			return nil
		},
		retry.Attempts(transportAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrCatalogUnavailable, err)
	}

	return nil
}
