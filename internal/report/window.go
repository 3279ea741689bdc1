package report

import "time"

const dateLayout = "2006-01-02"

// Window is the inclusive date range a report is scoped to.
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow computes the window covering the trailing span of days. The
// lag shifts the end date back for upstreams whose recent data is not final
// yet; Search Console publishes with a two day delay, GA4 with none.
func ResolveWindow(now time.Time, days, lagDays int) Window {
	end := now.AddDate(0, 0, -lagDays)
	start := end.AddDate(0, 0, -days)
	return Window{Start: start, End: end}
}

// StartDate formats the window start the way the upstream expects.
func (w Window) StartDate() string { return w.Start.Format(dateLayout) }

// EndDate formats the window end the way the upstream expects.
func (w Window) EndDate() string { return w.End.Format(dateLayout) }
