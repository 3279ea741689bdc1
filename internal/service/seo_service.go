package service

import (
	"context"
	"log"
	"sort"
	"time"

	searchconsole "google.golang.org/api/searchconsole/v1"

	"site-analytics-service/internal/gsc"
	"site-analytics-service/internal/model"
	"site-analytics-service/internal/report"
)

// searchDataLag is how many days behind "today" Search Console data is
// considered final.
const searchDataLag = 2

const historyRowLimit = 1000

// SeoService exposes search performance and sitemap views.
type SeoService interface {
	Overview(ctx context.Context, days int) (model.SeoOverviewResponse, error)
	Queries(ctx context.Context, days, limit int) (model.SeoQueriesResponse, error)
	Pages(ctx context.Context, days, limit int) (model.SeoPagesResponse, error)
	Sitemaps(ctx context.Context) (model.SitemapsResponse, error)
}

type seoService struct {
	client  gsc.SearchClient
	siteURL string
	now     func() time.Time
}

// NewSeoService builds the SEO view service over a Search Console client.
func NewSeoService(client gsc.SearchClient, siteURL string) SeoService {
	return &seoService{client: client, siteURL: siteURL, now: time.Now}
}

func (s *seoService) ready() error {
	if s.siteURL == "" {
		return &report.ConfigError{Message: "GSC_PROPERTY_URL not configured"}
	}
	if s.client == nil {
		return &report.ConfigError{Message: "search console client not initialized"}
	}
	return nil
}

func (s *seoService) query(ctx context.Context, days int, dimensions []string, rowLimit int64) ([]*searchconsole.ApiDataRow, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	window := report.ResolveWindow(s.now(), days, searchDataLag)
	resp, err := s.client.Query(ctx, s.siteURL, &searchconsole.SearchAnalyticsQueryRequest{
		StartDate:  window.StartDate(),
		EndDate:    window.EndDate(),
		Dimensions: dimensions,
		RowLimit:   rowLimit,
	})
	if err != nil {
		return nil, &report.QueryError{Err: err}
	}
	return resp.Rows, nil
}

// Overview returns the period totals plus a per-day history, oldest first.
func (s *seoService) Overview(ctx context.Context, days int) (model.SeoOverviewResponse, error) {
	totals, err := s.query(ctx, days, nil, 1)
	if err != nil {
		return model.SeoOverviewResponse{}, err
	}

	resp := model.SeoOverviewResponse{
		History: []model.SeoHistoryPoint{},
		Period:  period(days),
		Status:  "ok",
	}
	if len(totals) > 0 {
		resp.Clicks = int64(totals[0].Clicks)
		resp.Impressions = int64(totals[0].Impressions)
		resp.Ctr = percent(totals[0].Ctr, 2)
		resp.Position = roundTo(totals[0].Position, 1)
	}

	history, err := s.query(ctx, days, []string{"date"}, historyRowLimit)
	if err != nil {
		return model.SeoOverviewResponse{}, err
	}
	// Dimension rows come back ranked by clicks, not by date.
	sort.SliceStable(history, func(i, j int) bool {
		return rowKey(history[i], 0) < rowKey(history[j], 0)
	})
	for _, row := range history {
		resp.History = append(resp.History, model.SeoHistoryPoint{
			Date:        rowKey(row, 0),
			Clicks:      int64(row.Clicks),
			Impressions: int64(row.Impressions),
			Ctr:         percent(row.Ctr, 2),
			Position:    roundTo(row.Position, 1),
		})
	}
	return resp, nil
}

// Queries returns the top search queries for the period.
func (s *seoService) Queries(ctx context.Context, days, limit int) (model.SeoQueriesResponse, error) {
	rows, err := s.query(ctx, days, []string{"query"}, int64(limit))
	if err != nil {
		return model.SeoQueriesResponse{}, err
	}

	queries := make([]model.SeoQueryItem, 0, len(rows))
	for _, row := range rows {
		queries = append(queries, model.SeoQueryItem{
			Query:       rowKey(row, 0),
			Clicks:      int64(row.Clicks),
			Impressions: int64(row.Impressions),
			Ctr:         percent(row.Ctr, 2),
			Position:    roundTo(row.Position, 1),
		})
	}
	return model.SeoQueriesResponse{Queries: queries, Period: period(days)}, nil
}

// Pages returns the top pages in search for the period.
func (s *seoService) Pages(ctx context.Context, days, limit int) (model.SeoPagesResponse, error) {
	rows, err := s.query(ctx, days, []string{"page"}, int64(limit))
	if err != nil {
		return model.SeoPagesResponse{}, err
	}

	pages := make([]model.SeoPageItem, 0, len(rows))
	for _, row := range rows {
		pages = append(pages, model.SeoPageItem{
			Page:        rowKey(row, 0),
			Clicks:      int64(row.Clicks),
			Impressions: int64(row.Impressions),
			Ctr:         percent(row.Ctr, 2),
			Position:    roundTo(row.Position, 1),
		})
	}
	return model.SeoPagesResponse{Pages: pages, Period: period(days)}, nil
}

// Sitemaps lists submitted sitemaps. Upstream failures here are routine
// (missing sitemap permission, nothing submitted) and degrade to an empty
// list instead of an error.
func (s *seoService) Sitemaps(ctx context.Context) (model.SitemapsResponse, error) {
	if err := s.ready(); err != nil {
		return model.SitemapsResponse{}, err
	}

	resp := model.SitemapsResponse{Sitemaps: []model.SitemapStatus{}}
	list, err := s.client.ListSitemaps(ctx, s.siteURL)
	if err != nil {
		log.Printf("sitemaps list failed: %v", err)
		return resp, nil
	}

	for _, sm := range list.Sitemap {
		resp.Sitemaps = append(resp.Sitemaps, model.SitemapStatus{
			Path:            sm.Path,
			LastSubmitted:   sm.LastSubmitted,
			IsPending:       sm.IsPending,
			IsSitemapsIndex: sm.IsSitemapsIndex,
			LastCrawled:     sm.LastDownloaded,
			Errors:          sm.Errors,
			Warnings:        sm.Warnings,
		})
	}
	return resp, nil
}

func rowKey(row *searchconsole.ApiDataRow, i int) string {
	if i < len(row.Keys) {
		return row.Keys[i]
	}
	return ""
}
