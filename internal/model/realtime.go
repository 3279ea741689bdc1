package model

// CityActivity is one currently-active city.
type CityActivity struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Users   int64  `json:"users"`
}

// MinuteBucket is the active user count for one minutes-ago bucket of the
// trailing realtime window.
type MinuteBucket struct {
	MinutesAgo int   `json:"minutesAgo"`
	Users      int64 `json:"users"`
}

// RealtimeSnapshot merges the independently fetched realtime facets into one
// document. It is built per request and never persisted.
type RealtimeSnapshot struct {
	ActiveVisitors int64            `json:"activeVisitors"`
	URLs           map[string]int64 `json:"urls"`
	Countries      map[string]int64 `json:"countries"`
	Cities         []CityActivity   `json:"cities"`
	Devices        map[string]int64 `json:"devices"`
	Events         map[string]int64 `json:"events"`
	MinutesTrend   []MinuteBucket   `json:"minutesTrend"`
	Timestamp      string           `json:"timestamp"`
}
