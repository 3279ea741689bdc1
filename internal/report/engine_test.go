package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/analytics/apiv1beta/analyticsdatapb"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"site-analytics-service/internal/model"
	"site-analytics-service/internal/testdata/mockdataclient"
)

type EngineTestSuite struct {
	suite.Suite

	client *mockdataclient.Client

	// Concrete struct so tests can freeze the clock.
	engine *engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.client = &mockdataclient.Client{}
	eng := NewEngine(s.client, "123456")
	s.engine = eng.(*engine)
	s.engine.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
}

func pbRow(dimensions, metrics []string) *analyticsdatapb.Row {
	row := &analyticsdatapb.Row{}
	for _, d := range dimensions {
		row.DimensionValues = append(row.DimensionValues, &analyticsdatapb.DimensionValue{
			OneValue: &analyticsdatapb.DimensionValue_Value{Value: d},
		})
	}
	for _, m := range metrics {
		row.MetricValues = append(row.MetricValues, &analyticsdatapb.MetricValue{
			OneValue: &analyticsdatapb.MetricValue_Value{Value: m},
		})
	}
	return row
}

func (s *EngineTestSuite) window() Window {
	return ResolveWindow(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), 7, 0)
}

func (s *EngineTestSuite) TestRun_BuildsRequestAndNormalizes() {
	spec := Spec{
		Dimensions: []string{"pagePath"},
		Metrics:    []string{"screenPageViews", "bounceRate", "customLabel"},
		Window:     s.window(),
		OrderBy:    &OrderBy{Metric: "screenPageViews", Desc: true},
		Limit:      10,
	}

	resp := &analyticsdatapb.RunReportResponse{
		Rows: []*analyticsdatapb.Row{
			pbRow([]string{"/"}, []string{"120", "0.25", "n/a"}),
			pbRow([]string{"/blog"}, []string{"45", "0.5", "ok"}),
		},
	}

	s.client.On("RunReport", mock.Anything, mock.MatchedBy(func(req *analyticsdatapb.RunReportRequest) bool {
		return req.Property == "properties/123456" &&
			len(req.DateRanges) == 1 &&
			req.DateRanges[0].StartDate == "2024-01-08" &&
			req.DateRanges[0].EndDate == "2024-01-15" &&
			len(req.Dimensions) == 1 && req.Dimensions[0].Name == "pagePath" &&
			len(req.Metrics) == 3 &&
			req.Limit == 10 &&
			len(req.OrderBys) == 1 && req.OrderBys[0].Desc
	})).Return(resp, nil)

	rows, err := s.engine.Run(context.Background(), spec)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("/", rows[0].Dimension("pagePath"))
	s.Equal(model.IntValue(120), rows[0].Metric("screenPageViews"))
	s.Equal(model.FloatValue(0.25), rows[0].Metric("bounceRate"))
	s.Equal(model.TextValue("n/a"), rows[0].Metric("customLabel"))
	s.Equal("/blog", rows[1].Dimension("pagePath"))
}

func (s *EngineTestSuite) TestRun_AttachesFilter() {
	spec := Spec{
		Dimensions: []string{"eventName"},
		Metrics:    []string{"eventCount"},
		Window:     s.window(),
		Filter:     Match{Dimension: "eventName", Type: MatchExact, Value: "generate_lead"},
		Limit:      100,
	}

	s.client.On("RunReport", mock.Anything, mock.MatchedBy(func(req *analyticsdatapb.RunReportRequest) bool {
		return req.DimensionFilter.GetFilter().GetFieldName() == "eventName"
	})).Return(&analyticsdatapb.RunReportResponse{}, nil)

	rows, err := s.engine.Run(context.Background(), spec)

	s.Require().NoError(err)
	s.Empty(rows)
	s.client.AssertExpectations(s.T())
}

func (s *EngineTestSuite) TestRun_UpstreamFailure() {
	s.client.On("RunReport", mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded"))

	_, err := s.engine.Run(context.Background(), Spec{Metrics: []string{"sessions"}, Window: s.window()})

	var queryErr *QueryError
	s.Require().ErrorAs(err, &queryErr)
	s.Contains(err.Error(), "quota exceeded")
}

func (s *EngineTestSuite) TestRun_MissingProperty() {
	eng := NewEngine(s.client, "")

	_, err := eng.Run(context.Background(), Spec{Metrics: []string{"sessions"}})

	var cfgErr *ConfigError
	s.Require().ErrorAs(err, &cfgErr)
	s.client.AssertNotCalled(s.T(), "RunReport", mock.Anything, mock.Anything)
}

func (s *EngineTestSuite) TestRun_NilClient() {
	eng := NewEngine(nil, "123456")

	_, err := eng.Run(context.Background(), Spec{Metrics: []string{"sessions"}})

	var cfgErr *ConfigError
	s.Require().ErrorAs(err, &cfgErr)
}

func (s *EngineTestSuite) TestRunTotals_CoercesFirstRow() {
	metrics := []string{"activeUsers", "bounceRate"}

	s.client.On("RunReport", mock.Anything, mock.MatchedBy(func(req *analyticsdatapb.RunReportRequest) bool {
		return len(req.Dimensions) == 0 && req.DimensionFilter == nil
	})).Return(&analyticsdatapb.RunReportResponse{
		Rows: []*analyticsdatapb.Row{pbRow(nil, []string{"321", "0.4321"})},
	}, nil)

	totals, err := s.engine.RunTotals(context.Background(), metrics, s.window(), false)

	s.Require().NoError(err)
	s.Equal(model.IntValue(321), totals["activeUsers"])
	s.Equal(model.FloatValue(0.4321), totals["bounceRate"])
}

func (s *EngineTestSuite) TestRunTotals_ZeroRowsDefaultsToZero() {
	metrics := []string{"activeUsers", "sessions"}

	s.client.On("RunReport", mock.Anything, mock.Anything).
		Return(&analyticsdatapb.RunReportResponse{}, nil)

	totals, err := s.engine.RunTotals(context.Background(), metrics, s.window(), false)

	s.Require().NoError(err)
	s.Equal(map[string]model.Value{
		"activeUsers": model.IntValue(0),
		"sessions":    model.IntValue(0),
	}, totals)
}

func (s *EngineTestSuite) TestRunTotals_ExcludeInternalAttachesFilter() {
	s.client.On("RunReport", mock.Anything, mock.MatchedBy(func(req *analyticsdatapb.RunReportRequest) bool {
		return req.DimensionFilter.GetNotExpression().GetOrGroup() != nil
	})).Return(&analyticsdatapb.RunReportResponse{}, nil)

	_, err := s.engine.RunTotals(context.Background(), []string{"sessions"}, s.window(), true)

	s.Require().NoError(err)
	s.client.AssertExpectations(s.T())
}
