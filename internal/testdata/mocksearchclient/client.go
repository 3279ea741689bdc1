package mocksearchclient

import (
	"context"

	"github.com/stretchr/testify/mock"
	searchconsole "google.golang.org/api/searchconsole/v1"

	"site-analytics-service/internal/gsc"
)

type Client struct {
	mock.Mock
}

// Interface compliance check
var _ gsc.SearchClient = &Client{}

func (m *Client) Query(ctx context.Context, siteURL string, req *searchconsole.SearchAnalyticsQueryRequest) (*searchconsole.SearchAnalyticsQueryResponse, error) {
	args := m.Called(ctx, siteURL, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*searchconsole.SearchAnalyticsQueryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListSitemaps(ctx context.Context, siteURL string) (*searchconsole.SitemapsListResponse, error) {
	args := m.Called(ctx, siteURL)
	if resp := args.Get(0); resp != nil {
		return resp.(*searchconsole.SitemapsListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
