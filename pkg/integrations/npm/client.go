package npm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/matzehuels/pkgpulse/pkg/integrations"
)

// Default public endpoints.
const (
	DefaultRegistryURL  = "https://registry.npmjs.org"
	DefaultDownloadsURL = "https://api.npmjs.org/downloads"
)

// Client reads package documents from the npm registry and weekly download
// counts from the npm downloads API.
type Client struct {
	*integrations.Client
	registryURL  string
	downloadsURL string
}

// NewClient creates an npm client sending requests through hc. Empty URLs
// select the public endpoints.
func NewClient(hc *http.Client, registryURL, downloadsURL string) *Client {
	if registryURL == "" {
		registryURL = DefaultRegistryURL
	}
	if downloadsURL == "" {
		downloadsURL = DefaultDownloadsURL
	}
	return &Client{
		Client:       integrations.NewClient(hc, nil),
		registryURL:  strings.TrimSuffix(registryURL, "/"),
		downloadsURL: strings.TrimSuffix(downloadsURL, "/"),
	}
}

// FetchMetadata retrieves the registry document for pkg.
// Every failure is returned: without metadata there is nothing to report.
func (c *Client) FetchMetadata(ctx context.Context, pkg string) (*Metadata, error) {
	var m Metadata
	if err := c.Get(ctx, c.registryURL+"/"+url.PathEscape(pkg), &m); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return nil, err
	}
	return &m, nil
}

// FetchDownloads retrieves the download count for pkg over the last week.
// A response without a count yields nil and no error.
func (c *Client) FetchDownloads(ctx context.Context, pkg string) (*int64, error) {
	var data downloadsResponse
	if err := c.Get(ctx, c.downloadsURL+"/point/last-week/"+pkg, &data); err != nil {
		return nil, err
	}
	if data.Error != "" {
		return nil, fmt.Errorf("%w: downloads for %s: %s", integrations.ErrNotFound, pkg, data.Error)
	}
	return data.Downloads, nil
}

type downloadsResponse struct {
	Downloads *int64 `json:"downloads"`
	Package   string `json:"package"`
	Error     string `json:"error"`
}
