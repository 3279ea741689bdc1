package model

// Point is the uniform {x, y} item shape the dashboard charts consume.
type Point struct {
	X string `json:"x"`
	Y int64  `json:"y"`
}

// StatsResponse is the aggregate totals view.
type StatsResponse struct {
	Visitors           int64   `json:"visitors"`
	Pageviews          int64   `json:"pageviews"`
	BounceRate         float64 `json:"bounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
	Sessions           int64   `json:"sessions"`
	Period             string  `json:"period"`
}

// LeadsResponse reports the lead event count for a period.
type LeadsResponse struct {
	Leads  int64  `json:"leads"`
	Period string `json:"period"`
}

// SeriesResponse carries the pageviews and sessions time series as two
// parallel point lists sharing the same dates.
type SeriesResponse struct {
	Pageviews []Point `json:"pageviews"`
	Sessions  []Point `json:"sessions"`
	Period    string  `json:"period"`
}

// PageItem is one ranked page with its engagement metrics.
type PageItem struct {
	X          string  `json:"x"`
	Y          int64   `json:"y"`
	Visitors   int64   `json:"visitors"`
	BounceRate float64 `json:"bounceRate"`
	AvgTime    float64 `json:"avgTime"`
}

// TopPagesResponse is the ranked pages view.
type TopPagesResponse struct {
	Pages  []PageItem `json:"pages"`
	Period string     `json:"period"`
}

// DevicesResponse is the device category breakdown.
type DevicesResponse struct {
	Devices []Point `json:"devices"`
	Period  string  `json:"period"`
}

// ChannelItem is one traffic channel with sessions and users.
type ChannelItem struct {
	X     string `json:"x"`
	Y     int64  `json:"y"`
	Users int64  `json:"users"`
}

// ChannelsResponse is the traffic channel breakdown.
type ChannelsResponse struct {
	Channels []ChannelItem `json:"channels"`
	Period   string        `json:"period"`
}

// ReferrersResponse is the ranked referrer sources view.
type ReferrersResponse struct {
	Referrers []Point `json:"referrers"`
	Period    string  `json:"period"`
}

// CountriesResponse is the visitors-by-country view.
type CountriesResponse struct {
	Countries []Point `json:"countries"`
	Period    string  `json:"period"`
}

// CityItem is one city with its country for flag display.
type CityItem struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	Visitors int64  `json:"visitors"`
}

// CitiesResponse is the visitors-by-city view.
type CitiesResponse struct {
	Cities []CityItem `json:"cities"`
	Period string     `json:"period"`
}

// BrowsersResponse is the browser breakdown.
type BrowsersResponse struct {
	Browsers []Point `json:"browsers"`
	Period   string  `json:"period"`
}

// OperatingSystemsResponse is the operating system breakdown.
type OperatingSystemsResponse struct {
	OperatingSystems []Point `json:"operatingSystems"`
	Period           string  `json:"period"`
}

// EventsResponse is the custom events breakdown.
type EventsResponse struct {
	Events []Point `json:"events"`
	Period string  `json:"period"`
}

// LandingPageItem is one entry page with its bounce rate.
type LandingPageItem struct {
	X          string  `json:"x"`
	Y          int64   `json:"y"`
	BounceRate float64 `json:"bounceRate"`
}

// LandingPagesResponse is the entry pages view.
type LandingPagesResponse struct {
	LandingPages []LandingPageItem `json:"landingPages"`
	Period       string            `json:"period"`
}

// ExitPagesResponse approximates exit pages with pagePath by sessions; GA4
// has no exit page dimension.
type ExitPagesResponse struct {
	ExitPages []Point `json:"exitPages"`
	Period    string  `json:"period"`
}
