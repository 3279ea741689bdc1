package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"cloud.google.com/go/analytics/apiv1beta/analyticsdatapb"

	"site-analytics-service/internal/model"
)

// realtime issues one realtime-variant query. Realtime reports take no date
// window; the upstream defines the trailing activity window itself.
func (e *engine) realtime(ctx context.Context, dimensions []string, metric string) ([]model.Row, error) {
	req := &analyticsdatapb.RunRealtimeReportRequest{
		Property:   e.property(),
		Dimensions: dimensionsProto(dimensions),
		Metrics:    metricsProto([]string{metric}),
	}

	resp, err := e.client.RunRealtimeReport(ctx, req)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	metrics := []string{metric}
	rows := make([]model.Row, 0, len(resp.Rows))
	for _, raw := range resp.Rows {
		rows = append(rows, normalizeRow(raw, dimensions, metrics))
	}
	return rows, nil
}

// Snapshot fetches the realtime facets and merges them into one document.
// The facets share a single failure scope: the first error aborts the whole
// snapshot and none of the already-fetched facet data survives. A facet that
// legitimately returns no rows becomes an empty map or list.
func (e *engine) Snapshot(ctx context.Context) (model.RealtimeSnapshot, error) {
	if err := e.ready(); err != nil {
		return model.RealtimeSnapshot{}, err
	}

	var snap model.RealtimeSnapshot

	totals, err := e.realtime(ctx, nil, "activeUsers")
	if err != nil {
		return model.RealtimeSnapshot{}, err
	}
	if len(totals) > 0 {
		snap.ActiveVisitors = totals[0].Metric("activeUsers").Int()
	}

	pages, err := e.realtime(ctx, []string{"unifiedScreenName"}, "activeUsers")
	if err != nil {
		return model.RealtimeSnapshot{}, err
	}
	snap.URLs = countsByDimension(pages, "unifiedScreenName", "activeUsers")

	countries, err := e.realtime(ctx, []string{"country"}, "activeUsers")
	if err != nil {
		return model.RealtimeSnapshot{}, err
	}
	snap.Countries = countsByDimension(countries, "country", "activeUsers")

	cities, err := e.realtime(ctx, []string{"city", "country"}, "activeUsers")
	if err != nil {
		return model.RealtimeSnapshot{}, err
	}
	snap.Cities = make([]model.CityActivity, 0, len(cities))
	for _, row := range cities {
		snap.Cities = append(snap.Cities, model.CityActivity{
			City:    row.Dimension("city"),
			Country: row.Dimension("country"),
			Users:   row.Metric("activeUsers").Int(),
		})
	}

	devices, err := e.realtime(ctx, []string{"deviceCategory"}, "activeUsers")
	if err != nil {
		return model.RealtimeSnapshot{}, err
	}
	snap.Devices = countsByDimension(devices, "deviceCategory", "activeUsers")

	events, err := e.realtime(ctx, []string{"eventName"}, "eventCount")
	if err != nil {
		return model.RealtimeSnapshot{}, err
	}
	snap.Events = countsByDimension(events, "eventName", "eventCount")

	minutes, err := e.realtime(ctx, []string{"minutesAgo"}, "activeUsers")
	if err != nil {
		return model.RealtimeSnapshot{}, err
	}
	snap.MinutesTrend = make([]model.MinuteBucket, 0, len(minutes))
	for _, row := range minutes {
		bucket, convErr := strconv.Atoi(row.Dimension("minutesAgo"))
		if convErr != nil {
			return model.RealtimeSnapshot{}, &QueryError{
				Err: fmt.Errorf("bad minutesAgo bucket %q", row.Dimension("minutesAgo")),
			}
		}
		snap.MinutesTrend = append(snap.MinutesTrend, model.MinuteBucket{
			MinutesAgo: bucket,
			Users:      row.Metric("activeUsers").Int(),
		})
	}
	// The upstream does not guarantee bucket order.
	sort.Slice(snap.MinutesTrend, func(i, j int) bool {
		return snap.MinutesTrend[i].MinutesAgo < snap.MinutesTrend[j].MinutesAgo
	})

	snap.Timestamp = e.now().Format(time.RFC3339)
	return snap, nil
}

func countsByDimension(rows []model.Row, dimension, metric string) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Dimension(dimension)] = row.Metric(metric).Int()
	}
	return counts
}
