package tools

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// window is a resolved inclusive date range.
type window struct {
	start time.Time
	end   time.Time
}

// monthWindow covers the first through the last day of the month
// containing now.
func monthWindow(now time.Time) window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return window{start: start, end: end}
}

// budgetWindow covers the first day of the previous month through the
// last day of the next month. AddDate handles the year rollover on
// both ends.
func budgetWindow(now time.Time) window {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, -1, 0)
	end := first.AddDate(0, 2, -1)
	return window{start: start, end: end}
}

// resolveWindow applies the date argument policy: both dates given →
// parse them; neither → fall back to the default window; exactly one →
// invalid.
func resolveWindow(startArg, endArg string, fallback window) (window, error) {
	if (startArg == "") != (endArg == "") {
		return window{}, fmt.Errorf("provide both startDate and endDate, or neither")
	}
	if startArg == "" {
		return fallback, nil
	}

	start, err := time.Parse(dateLayout, startArg)
	if err != nil {
		return window{}, fmt.Errorf("invalid startDate %q: expected YYYY-MM-DD", startArg)
	}
	end, err := time.Parse(dateLayout, endArg)
	if err != nil {
		return window{}, fmt.Errorf("invalid endDate %q: expected YYYY-MM-DD", endArg)
	}
	if end.Before(start) {
		return window{}, fmt.Errorf("endDate %s is before startDate %s", endArg, startArg)
	}

	return window{start: start, end: end}, nil
}
