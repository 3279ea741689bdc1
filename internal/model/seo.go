package model

// SeoHistoryPoint is one day of search performance.
type SeoHistoryPoint struct {
	Date        string  `json:"date"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Ctr         float64 `json:"ctr"`
	Position    float64 `json:"position"`
}

// SeoOverviewResponse carries the search performance totals plus a daily
// history for the chart.
type SeoOverviewResponse struct {
	Clicks      int64             `json:"clicks"`
	Impressions int64             `json:"impressions"`
	Ctr         float64           `json:"ctr"`
	Position    float64           `json:"position"`
	History     []SeoHistoryPoint `json:"history"`
	Period      string            `json:"period"`
	Status      string            `json:"status"`
}

// SeoQueryItem is one search query with its performance metrics.
type SeoQueryItem struct {
	Query       string  `json:"query"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Ctr         float64 `json:"ctr"`
	Position    float64 `json:"position"`
}

// SeoQueriesResponse is the top search queries view.
type SeoQueriesResponse struct {
	Queries []SeoQueryItem `json:"queries"`
	Period  string         `json:"period"`
}

// SeoPageItem is one indexed page with its search performance.
type SeoPageItem struct {
	Page        string  `json:"page"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Ctr         float64 `json:"ctr"`
	Position    float64 `json:"position"`
}

// SeoPagesResponse is the top pages in search view.
type SeoPagesResponse struct {
	Pages  []SeoPageItem `json:"pages"`
	Period string        `json:"period"`
}

// SitemapStatus describes one submitted sitemap.
type SitemapStatus struct {
	Path            string `json:"path"`
	LastSubmitted   string `json:"lastSubmitted,omitempty"`
	IsPending       bool   `json:"isPending"`
	IsSitemapsIndex bool   `json:"isSitemapsIndex"`
	LastCrawled     string `json:"lastCrawled,omitempty"`
	Errors          int64  `json:"errors"`
	Warnings        int64  `json:"warnings"`
}

// SitemapsResponse lists submitted sitemaps; it is empty rather than an error
// when the upstream denies access or none are submitted.
type SitemapsResponse struct {
	Sitemaps []SitemapStatus `json:"sitemaps"`
}
