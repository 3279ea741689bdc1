package mockdataclient

import (
	"context"

	"cloud.google.com/go/analytics/apiv1beta/analyticsdatapb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/mock"

	"site-analytics-service/internal/report"
)

type Client struct {
	mock.Mock
}

// Interface compliance check
var _ report.DataClient = &Client{}

func (m *Client) RunReport(ctx context.Context, req *analyticsdatapb.RunReportRequest, opts ...gax.CallOption) (*analyticsdatapb.RunReportResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*analyticsdatapb.RunReportResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) RunRealtimeReport(ctx context.Context, req *analyticsdatapb.RunRealtimeReportRequest, opts ...gax.CallOption) (*analyticsdatapb.RunRealtimeReportResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*analyticsdatapb.RunRealtimeReportResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
