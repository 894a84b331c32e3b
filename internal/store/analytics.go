package store

import (
	"time"

	"github.com/ninetd/ninetd/internal/models"
)

// Derived display analytics. All of these depend on the wall clock, so
// they are pure functions over a log snapshot with an explicit now and
// are recomputed on demand, never cached in durable state.

// GroupLabel buckets a timestamp by calendar-day distance from now.
func GroupLabel(t, now time.Time) string {
	switch d := calendarDays(t, now); {
	case d == 0:
		return "Today"
	case d == 1:
		return "Yesterday"
	case d <= 7:
		return "Last 7 Days"
	default:
		return "Older"
	}
}

// DayGroup is one display bucket of log entries.
type DayGroup struct {
	Label   string
	Entries []models.LogEntry
}

// GroupByDay splits entries into Today/Yesterday/Last 7 Days/Older
// buckets, preserving entry order and omitting empty buckets.
func GroupByDay(logs []models.LogEntry, now time.Time) []DayGroup {
	var groups []DayGroup
	index := map[string]int{}
	for _, e := range logs {
		label := GroupLabel(e.CreatedAt, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DayGroup{Label: label})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// WeeklySeries counts entries per calendar day over the last seven
// days, oldest day first. Feeds the activity sparkline.
func WeeklySeries(logs []models.LogEntry, now time.Time) [7]int {
	var series [7]int
	for _, e := range logs {
		d := calendarDays(e.CreatedAt, now)
		if d >= 0 && d < 7 {
			series[6-d]++
		}
	}
	return series
}

// Streak counts consecutive days with at least one entry, walking
// backward from today and stopping at the first empty day.
func Streak(logs []models.LogEntry, now time.Time) int {
	days := map[int]bool{}
	for _, e := range logs {
		days[calendarDays(e.CreatedAt, now)] = true
	}
	streak := 0
	for d := 0; days[d]; d++ {
		streak++
	}
	return streak
}

// CompletionRate returns completed/created as a rounded percentage, or
// zero when nothing was created.
func CompletionRate(in Insights) int {
	if in.Created == 0 {
		return 0
	}
	return int(float64(in.Completed)/float64(in.Created)*100 + 0.5)
}

// CountSince returns how many entries fall within maxDays calendar days
// of now (0 counts today only).
func CountSince(logs []models.LogEntry, now time.Time, maxDays int) int {
	n := 0
	for _, e := range logs {
		if d := calendarDays(e.CreatedAt, now); d >= 0 && d <= maxDays {
			n++
		}
	}
	return n
}

// calendarDays is the difference in local calendar days between t and
// now; 0 means the same day, negative means t is in the future.
func calendarDays(t, now time.Time) int {
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(b.Sub(a) / (24 * time.Hour))
}
