package report

import (
	"context"
	"time"

	"cloud.google.com/go/analytics/apiv1beta/analyticsdatapb"
	"github.com/googleapis/gax-go/v2"

	"site-analytics-service/internal/model"
)

// DataClient is the slice of the GA4 Data API the engine depends on. The real
// *apiv1beta.BetaAnalyticsDataClient satisfies it.
type DataClient interface {
	RunReport(ctx context.Context, req *analyticsdatapb.RunReportRequest, opts ...gax.CallOption) (*analyticsdatapb.RunReportResponse, error)
	RunRealtimeReport(ctx context.Context, req *analyticsdatapb.RunRealtimeReportRequest, opts ...gax.CallOption) (*analyticsdatapb.RunRealtimeReportResponse, error)
}

// OrderBy orders report rows by a named metric.
type OrderBy struct {
	Metric string
	Desc   bool
}

// Spec describes one report: which dimensions and metrics, over which window,
// optionally filtered and ordered. Dimension order defines output column
// order; the upstream returns values positionally in request order.
type Spec struct {
	Dimensions []string
	Metrics    []string
	Window     Window
	Filter     Filter
	OrderBy    *OrderBy
	Limit      int64
}

// Engine issues structured queries against the reporting upstream and
// normalizes the responses. Aggregation, ordering and limiting happen
// upstream; the engine never computes aggregates locally.
type Engine interface {
	// Run dispatches one report and returns its normalized rows.
	Run(ctx context.Context, spec Spec) ([]model.Row, error)

	// RunTotals runs a dimensionless report producing one summary value per
	// metric. Zero upstream rows default every metric to integer zero so
	// callers never branch on missing keys.
	RunTotals(ctx context.Context, metrics []string, window Window, excludeInternal bool) (map[string]model.Value, error)

	// Snapshot fetches and merges the realtime facets.
	Snapshot(ctx context.Context) (model.RealtimeSnapshot, error)
}

type engine struct {
	client     DataClient
	propertyID string
	now        func() time.Time
}

// NewEngine builds the report engine over an authenticated data client. A nil
// client means credentials were unavailable at startup; every query then
// fails with a ConfigError rather than panicking.
func NewEngine(client DataClient, propertyID string) Engine {
	return &engine{client: client, propertyID: propertyID, now: time.Now}
}

func (e *engine) ready() error {
	if e.propertyID == "" {
		return &ConfigError{Message: "GA_PROPERTY_ID not configured"}
	}
	if e.client == nil {
		return &ConfigError{Message: "analytics client not initialized"}
	}
	return nil
}

func (e *engine) property() string { return "properties/" + e.propertyID }

func (e *engine) Run(ctx context.Context, spec Spec) ([]model.Row, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	req := &analyticsdatapb.RunReportRequest{
		Property: e.property(),
		DateRanges: []*analyticsdatapb.DateRange{{
			StartDate: spec.Window.StartDate(),
			EndDate:   spec.Window.EndDate(),
		}},
		Dimensions: dimensionsProto(spec.Dimensions),
		Metrics:    metricsProto(spec.Metrics),
		Limit:      spec.Limit,
	}
	if spec.Filter != nil {
		req.DimensionFilter = spec.Filter.proto()
	}
	if spec.OrderBy != nil {
		req.OrderBys = []*analyticsdatapb.OrderBy{{
			OneOrderBy: &analyticsdatapb.OrderBy_Metric{
				Metric: &analyticsdatapb.OrderBy_MetricOrderBy{MetricName: spec.OrderBy.Metric},
			},
			Desc: spec.OrderBy.Desc,
		}}
	}

	resp, err := e.client.RunReport(ctx, req)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	rows := make([]model.Row, 0, len(resp.Rows))
	for _, raw := range resp.Rows {
		rows = append(rows, normalizeRow(raw, spec.Dimensions, spec.Metrics))
	}
	return rows, nil
}

func (e *engine) RunTotals(ctx context.Context, metrics []string, window Window, excludeInternal bool) (map[string]model.Value, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	req := &analyticsdatapb.RunReportRequest{
		Property: e.property(),
		DateRanges: []*analyticsdatapb.DateRange{{
			StartDate: window.StartDate(),
			EndDate:   window.EndDate(),
		}},
		Metrics: metricsProto(metrics),
	}
	if excludeInternal {
		req.DimensionFilter = ExcludeInternalTraffic().proto()
	}

	resp, err := e.client.RunReport(ctx, req)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	totals := make(map[string]model.Value, len(metrics))
	if len(resp.Rows) == 0 {
		// A window with no traffic yields no rows; callers still expect
		// every metric present.
		for _, name := range metrics {
			totals[name] = model.IntValue(0)
		}
		return totals, nil
	}

	first := resp.Rows[0]
	for i, name := range metrics {
		if i < len(first.MetricValues) {
			totals[name] = model.Coerce(first.MetricValues[i].GetValue())
		} else {
			totals[name] = model.IntValue(0)
		}
	}
	return totals, nil
}

// normalizeRow zips positional upstream values with the requested names.
func normalizeRow(raw *analyticsdatapb.Row, dimensions, metrics []string) model.Row {
	row := model.Row{
		Dimensions: make(map[string]string, len(dimensions)),
		Metrics:    make(map[string]model.Value, len(metrics)),
	}
	for i, name := range dimensions {
		if i < len(raw.DimensionValues) {
			row.Dimensions[name] = raw.DimensionValues[i].GetValue()
		}
	}
	for i, name := range metrics {
		if i < len(raw.MetricValues) {
			row.Metrics[name] = model.Coerce(raw.MetricValues[i].GetValue())
		}
	}
	return row
}

func dimensionsProto(names []string) []*analyticsdatapb.Dimension {
	if len(names) == 0 {
		return nil
	}
	dims := make([]*analyticsdatapb.Dimension, 0, len(names))
	for _, name := range names {
		dims = append(dims, &analyticsdatapb.Dimension{Name: name})
	}
	return dims
}

func metricsProto(names []string) []*analyticsdatapb.Metric {
	mets := make([]*analyticsdatapb.Metric, 0, len(names))
	for _, name := range names {
		mets = append(mets, &analyticsdatapb.Metric{Name: name})
	}
	return mets
}
