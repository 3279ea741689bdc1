package gsc

import (
	"context"

	searchconsole "google.golang.org/api/searchconsole/v1"
)

// SearchClient is the slice of the Search Console API the service depends on.
type SearchClient interface {
	// Query runs one search analytics query against a site.
	Query(ctx context.Context, siteURL string, req *searchconsole.SearchAnalyticsQueryRequest) (*searchconsole.SearchAnalyticsQueryResponse, error)

	// ListSitemaps lists the sitemaps submitted for a site.
	ListSitemaps(ctx context.Context, siteURL string) (*searchconsole.SitemapsListResponse, error)
}

type client struct {
	svc *searchconsole.Service
}

// NewClient adapts the generated Search Console service to SearchClient.
func NewClient(svc *searchconsole.Service) SearchClient {
	return &client{svc: svc}
}

func (c *client) Query(ctx context.Context, siteURL string, req *searchconsole.SearchAnalyticsQueryRequest) (*searchconsole.SearchAnalyticsQueryResponse, error) {
	return c.svc.Searchanalytics.Query(siteURL, req).Context(ctx).Do()
}

func (c *client) ListSitemaps(ctx context.Context, siteURL string) (*searchconsole.SitemapsListResponse, error) {
	return c.svc.Sitemaps.List(siteURL).Context(ctx).Do()
}
