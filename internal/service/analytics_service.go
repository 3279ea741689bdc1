package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"site-analytics-service/internal/model"
	"site-analytics-service/internal/report"
)

// referrerDenylist identifies debug and test traffic sources dropped from the
// referrers view. Matching is a case-insensitive substring check.
var referrerDenylist = []string{
	"tagassistant.google.com",
	"gtm-msr.appspot.com",
	"localhost",
	"127.0.0.1",
}

// denylistPadding is how many extra rows the referrers query fetches to make
// up for entries the denylist drops. When more than this many ranked rows are
// denylisted the view comes back shorter than the requested limit, which is
// accepted.
const denylistPadding = 10

// defaultLimit caps breakdown queries that expose no limit parameter.
const defaultLimit = 100

// AnalyticsService shapes normalized report rows into the dashboard views.
type AnalyticsService interface {
	Stats(ctx context.Context, days int) (model.StatsResponse, error)
	Leads(ctx context.Context, days int) (model.LeadsResponse, error)
	PageviewsSeries(ctx context.Context, days int) (model.SeriesResponse, error)
	TopPages(ctx context.Context, days, limit int) (model.TopPagesResponse, error)
	Devices(ctx context.Context, days int) (model.DevicesResponse, error)
	Channels(ctx context.Context, days int) (model.ChannelsResponse, error)
	Referrers(ctx context.Context, days, limit int) (model.ReferrersResponse, error)
	Countries(ctx context.Context, days, limit int) (model.CountriesResponse, error)
	Cities(ctx context.Context, days, limit int) (model.CitiesResponse, error)
	Browsers(ctx context.Context, days int) (model.BrowsersResponse, error)
	OperatingSystems(ctx context.Context, days int) (model.OperatingSystemsResponse, error)
	Events(ctx context.Context, days int) (model.EventsResponse, error)
	LandingPages(ctx context.Context, days, limit int) (model.LandingPagesResponse, error)
	ExitPages(ctx context.Context, days, limit int) (model.ExitPagesResponse, error)
	Realtime(ctx context.Context) (model.RealtimeSnapshot, error)
}

type analyticsService struct {
	engine report.Engine
	now    func() time.Time
}

// NewAnalyticsService builds the dashboard view service over a report engine.
func NewAnalyticsService(engine report.Engine) AnalyticsService {
	return &analyticsService{engine: engine, now: time.Now}
}

func (s *analyticsService) window(days int) report.Window {
	return report.ResolveWindow(s.now(), days, 0)
}

// Stats returns the aggregate totals with internal traffic excluded. Bounce
// rate becomes a percentage; durations are rounded to one decimal.
func (s *analyticsService) Stats(ctx context.Context, days int) (model.StatsResponse, error) {
	metrics := []string{"activeUsers", "screenPageViews", "bounceRate", "averageSessionDuration", "sessions"}
	totals, err := s.engine.RunTotals(ctx, metrics, s.window(days), true)
	if err != nil {
		return model.StatsResponse{}, err
	}

	return model.StatsResponse{
		Visitors:           totals["activeUsers"].Int(),
		Pageviews:          totals["screenPageViews"].Int(),
		BounceRate:         percent(totals["bounceRate"].Float(), 2),
		AvgSessionDuration: roundTo(totals["averageSessionDuration"].Float(), 1),
		Sessions:           totals["sessions"].Int(),
		Period:             period(days),
	}, nil
}

// Leads counts generate_lead events over the period.
func (s *analyticsService) Leads(ctx context.Context, days int) (model.LeadsResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"eventName"},
		Metrics:    []string{"eventCount"},
		Window:     s.window(days),
		Filter:     report.Match{Dimension: "eventName", Type: report.MatchExact, Value: "generate_lead"},
		Limit:      defaultLimit,
	})
	if err != nil {
		return model.LeadsResponse{}, err
	}

	var total int64
	for _, row := range rows {
		total += row.Metric("eventCount").Int()
	}
	return model.LeadsResponse{Leads: total, Period: period(days)}, nil
}

// PageviewsSeries returns pageviews and sessions as two parallel daily
// series. Rows are sorted on the raw YYYYMMDD form, which is lexicographically
// date-correct, before reformatting.
func (s *analyticsService) PageviewsSeries(ctx context.Context, days int) (model.SeriesResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"date"},
		Metrics:    []string{"screenPageViews", "sessions"},
		Window:     s.window(days),
		Limit:      365,
	})
	if err != nil {
		return model.SeriesResponse{}, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Dimension("date") < rows[j].Dimension("date")
	})

	resp := model.SeriesResponse{
		Pageviews: make([]model.Point, 0, len(rows)),
		Sessions:  make([]model.Point, 0, len(rows)),
		Period:    period(days),
	}
	for _, row := range rows {
		date := formatReportDate(row.Dimension("date"))
		resp.Pageviews = append(resp.Pageviews, model.Point{X: date, Y: row.Metric("screenPageViews").Int()})
		resp.Sessions = append(resp.Sessions, model.Point{X: date, Y: row.Metric("sessions").Int()})
	}
	return resp, nil
}

// TopPages returns pages ranked by pageviews with per-page engagement.
func (s *analyticsService) TopPages(ctx context.Context, days, limit int) (model.TopPagesResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"pagePath"},
		Metrics:    []string{"screenPageViews", "activeUsers", "bounceRate", "averageSessionDuration"},
		Window:     s.window(days),
		OrderBy:    &report.OrderBy{Metric: "screenPageViews", Desc: true},
		Limit:      int64(limit),
	})
	if err != nil {
		return model.TopPagesResponse{}, err
	}

	pages := make([]model.PageItem, 0, len(rows))
	for _, row := range rows {
		pages = append(pages, model.PageItem{
			X:          row.Dimension("pagePath"),
			Y:          row.Metric("screenPageViews").Int(),
			Visitors:   row.Metric("activeUsers").Int(),
			BounceRate: percent(row.Metric("bounceRate").Float(), 1),
			AvgTime:    roundTo(row.Metric("averageSessionDuration").Float(), 1),
		})
	}
	return model.TopPagesResponse{Pages: pages, Period: period(days)}, nil
}

func (s *analyticsService) Devices(ctx context.Context, days int) (model.DevicesResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"deviceCategory"},
		Metrics:    []string{"activeUsers"},
		Window:     s.window(days),
		Limit:      defaultLimit,
	})
	if err != nil {
		return model.DevicesResponse{}, err
	}
	return model.DevicesResponse{
		Devices: pointsFromRows(rows, "deviceCategory", "activeUsers"),
		Period:  period(days),
	}, nil
}

func (s *analyticsService) Channels(ctx context.Context, days int) (model.ChannelsResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"sessionDefaultChannelGroup"},
		Metrics:    []string{"sessions", "activeUsers"},
		Window:     s.window(days),
		Limit:      defaultLimit,
	})
	if err != nil {
		return model.ChannelsResponse{}, err
	}

	channels := make([]model.ChannelItem, 0, len(rows))
	for _, row := range rows {
		channels = append(channels, model.ChannelItem{
			X:     row.Dimension("sessionDefaultChannelGroup"),
			Y:     row.Metric("sessions").Int(),
			Users: row.Metric("activeUsers").Int(),
		})
	}
	return model.ChannelsResponse{Channels: channels, Period: period(days)}, nil
}

// Referrers returns ranked traffic sources with debug and test sources
// removed. The query over-fetches by denylistPadding rows and truncates back
// to the requested limit after filtering.
func (s *analyticsService) Referrers(ctx context.Context, days, limit int) (model.ReferrersResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"sessionSource"},
		Metrics:    []string{"sessions"},
		Window:     s.window(days),
		OrderBy:    &report.OrderBy{Metric: "sessions", Desc: true},
		Limit:      int64(limit + denylistPadding),
	})
	if err != nil {
		return model.ReferrersResponse{}, err
	}

	referrers := make([]model.Point, 0, limit)
	for _, row := range rows {
		source := row.Dimension("sessionSource")
		if denylisted(source) {
			continue
		}
		referrers = append(referrers, model.Point{X: source, Y: row.Metric("sessions").Int()})
		if len(referrers) == limit {
			break
		}
	}
	return model.ReferrersResponse{Referrers: referrers, Period: period(days)}, nil
}

func denylisted(source string) bool {
	lower := strings.ToLower(source)
	for _, entry := range referrerDenylist {
		if strings.Contains(lower, entry) {
			return true
		}
	}
	return false
}

func (s *analyticsService) Countries(ctx context.Context, days, limit int) (model.CountriesResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"country"},
		Metrics:    []string{"activeUsers"},
		Window:     s.window(days),
		OrderBy:    &report.OrderBy{Metric: "activeUsers", Desc: true},
		Limit:      int64(limit),
	})
	if err != nil {
		return model.CountriesResponse{}, err
	}
	return model.CountriesResponse{
		Countries: pointsFromRows(rows, "country", "activeUsers"),
		Period:    period(days),
	}, nil
}

func (s *analyticsService) Cities(ctx context.Context, days, limit int) (model.CitiesResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"city", "country"},
		Metrics:    []string{"activeUsers"},
		Window:     s.window(days),
		OrderBy:    &report.OrderBy{Metric: "activeUsers", Desc: true},
		Limit:      int64(limit),
	})
	if err != nil {
		return model.CitiesResponse{}, err
	}

	cities := make([]model.CityItem, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, model.CityItem{
			City:     row.Dimension("city"),
			Country:  row.Dimension("country"),
			Visitors: row.Metric("activeUsers").Int(),
		})
	}
	return model.CitiesResponse{Cities: cities, Period: period(days)}, nil
}

func (s *analyticsService) Browsers(ctx context.Context, days int) (model.BrowsersResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"browser"},
		Metrics:    []string{"activeUsers"},
		Window:     s.window(days),
		Limit:      defaultLimit,
	})
	if err != nil {
		return model.BrowsersResponse{}, err
	}
	return model.BrowsersResponse{
		Browsers: pointsFromRows(rows, "browser", "activeUsers"),
		Period:   period(days),
	}, nil
}

func (s *analyticsService) OperatingSystems(ctx context.Context, days int) (model.OperatingSystemsResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"operatingSystem"},
		Metrics:    []string{"activeUsers"},
		Window:     s.window(days),
		Limit:      defaultLimit,
	})
	if err != nil {
		return model.OperatingSystemsResponse{}, err
	}
	return model.OperatingSystemsResponse{
		OperatingSystems: pointsFromRows(rows, "operatingSystem", "activeUsers"),
		Period:           period(days),
	}, nil
}

func (s *analyticsService) Events(ctx context.Context, days int) (model.EventsResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"eventName"},
		Metrics:    []string{"eventCount"},
		Window:     s.window(days),
		OrderBy:    &report.OrderBy{Metric: "eventCount", Desc: true},
		Limit:      20,
	})
	if err != nil {
		return model.EventsResponse{}, err
	}
	return model.EventsResponse{
		Events: pointsFromRows(rows, "eventName", "eventCount"),
		Period: period(days),
	}, nil
}

func (s *analyticsService) LandingPages(ctx context.Context, days, limit int) (model.LandingPagesResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"landingPage"},
		Metrics:    []string{"sessions", "bounceRate"},
		Window:     s.window(days),
		OrderBy:    &report.OrderBy{Metric: "sessions", Desc: true},
		Limit:      int64(limit),
	})
	if err != nil {
		return model.LandingPagesResponse{}, err
	}

	pages := make([]model.LandingPageItem, 0, len(rows))
	for _, row := range rows {
		pages = append(pages, model.LandingPageItem{
			X:          row.Dimension("landingPage"),
			Y:          row.Metric("sessions").Int(),
			BounceRate: percent(row.Metric("bounceRate").Float(), 1),
		})
	}
	return model.LandingPagesResponse{LandingPages: pages, Period: period(days)}, nil
}

// ExitPages ranks pagePath by sessions. GA4 has no exit page dimension, so
// this remains an approximation.
func (s *analyticsService) ExitPages(ctx context.Context, days, limit int) (model.ExitPagesResponse, error) {
	rows, err := s.engine.Run(ctx, report.Spec{
		Dimensions: []string{"pagePath"},
		Metrics:    []string{"sessions"},
		Window:     s.window(days),
		OrderBy:    &report.OrderBy{Metric: "sessions", Desc: true},
		Limit:      int64(limit),
	})
	if err != nil {
		return model.ExitPagesResponse{}, err
	}
	return model.ExitPagesResponse{
		ExitPages: pointsFromRows(rows, "pagePath", "sessions"),
		Period:    period(days),
	}, nil
}

func (s *analyticsService) Realtime(ctx context.Context) (model.RealtimeSnapshot, error) {
	return s.engine.Snapshot(ctx)
}
