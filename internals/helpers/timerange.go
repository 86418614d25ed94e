// file: internals/helpers/timerange.go
package helper

import (
	"fmt"
	"strings"
	"time"
)

/* ===============================
   Time range resolver
   ?time_range=24h|7d|30d|90d|all|weekly|monthly|yearly
=================================*/

type TimeRange struct {
	Start time.Time
	End   time.Time
	Label string
	All   bool // true kalau tanpa batas bawah
}

// ResolveTimeRange: hitung [start, end] dari label time_range relatif ke `now`.
// `now` di-inject (bukan time.Now() global) supaya deterministik di test.
func ResolveTimeRange(label string, now time.Time) (TimeRange, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = "30d"
	}

	tr := TimeRange{End: now, Label: label}
	switch label {
	case "24h":
		tr.Start = now.Add(-24 * time.Hour)
	case "7d", "weekly":
		tr.Start = now.AddDate(0, 0, -7)
	case "30d", "monthly":
		tr.Start = now.AddDate(0, 0, -30)
	case "90d":
		tr.Start = now.AddDate(0, 0, -90)
	case "yearly":
		tr.Start = now.AddDate(-1, 0, 0)
	case "all":
		tr.All = true
	default:
		return TimeRange{}, fmt.Errorf("time_range tidak dikenal: %q", label)
	}
	return tr, nil
}

// LastNDays: window [awal hari (now - days + 1), now] dalam lokasi `loc`.
// Dipakai daily-activity & trend yang butuh batas per hari kalender.
func LastNDays(now time.Time, days int, loc *time.Location) TimeRange {
	if days < 1 {
		days = 1
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -(days - 1))
	return TimeRange{Start: start, End: now, Label: fmt.Sprintf("%dd", days)}
}
