// Package report aggregates recorded sessions into weekly summaries and
// renders them for the terminal and the printable chart.
package report

import (
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/timeline"
)

const daysInAWeek = 7

// Week bounds a reporting window of seven logical days, starting at 07:00
// on its Monday.
type Week struct {
	Start time.Time
}

// WeekOf returns the week containing t under the logical-day rule: an
// instant before Monday 07:00 still belongs to the previous week.
func WeekOf(t time.Time) Week {
	day := timeline.LogicalDayStart(t)
	monday := timeutil.StartOfWeek(day)

	return Week{
		Start: time.Date(
			monday.Year(),
			monday.Month(),
			monday.Day(),
			timeline.DayBoundaryHour,
			0,
			0,
			0,
			monday.Location(),
		),
	}
}

// End is the exclusive end of the window, the following Monday at 07:00.
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, daysInAWeek)
}

// Contains reports whether t falls inside the window.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End())
}

// Dates returns the seven logical-day date strings of the week.
func (w Week) Dates() [daysInAWeek]string {
	var dates [daysInAWeek]string

	for i := range dates {
		dates[i] = timeutil.ToDateString(w.Start.AddDate(0, 0, i))
	}

	return dates
}

// dayIndex maps a session start time to its 0-based day within the week.
func (w Week) dayIndex(t time.Time) int {
	day := timeline.LogicalDayStart(t)

	idx := int(day.Sub(w.Start).Hours()/24 + 0.5)

	if idx < 0 {
		idx = 0
	}

	if idx >= daysInAWeek {
		idx = daysInAWeek - 1
	}

	return idx
}

// DayTotal is the recorded total for one logical day.
type DayTotal struct {
	Date    string
	Seconds int64
}

// CategoryTotal is the recorded total for one category, with its share of
// the week.
type CategoryTotal struct {
	Category models.Category
	Seconds  int64
	Percent  float64
}

// Summary is the weekly aggregation consumed by the renderers.
type Summary struct {
	Week       Week
	Days       [daysInAWeek]DayTotal
	Categories []CategoryTotal
	Total      int64
}

// AggregateWeek buckets completed sessions into the week's seven logical
// days and into per-category totals. It is a pure function of its inputs:
// calling it repeatedly, or for different weeks, shares no state. Sessions
// referencing a missing category are pooled under the fallback category
// rather than dropped.
func AggregateWeek(
	sessions []models.Session,
	categories []models.Category,
	week Week,
) Summary {
	s := Summary{Week: week}

	dates := week.Dates()
	for i := range s.Days {
		s.Days[i].Date = dates[i]
	}

	known := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		known[cat.ID] = struct{}{}
	}

	catTotals := make(map[string]int64)

	var fallbackTotal int64

	for i := range sessions {
		sess := sessions[i]

		if sess.Running() || !week.Contains(sess.StartTime) {
			continue
		}

		s.Total += sess.Duration
		s.Days[week.dayIndex(sess.StartTime)].Seconds += sess.Duration

		if _, ok := known[sess.CategoryID]; ok {
			catTotals[sess.CategoryID] += sess.Duration
		} else {
			fallbackTotal += sess.Duration
		}
	}

	for _, cat := range categories {
		secs := catTotals[cat.ID]
		if secs == 0 {
			continue
		}

		s.Categories = append(s.Categories, CategoryTotal{
			Category: cat,
			Seconds:  secs,
			Percent:  percent(secs, s.Total),
		})
	}

	if fallbackTotal > 0 {
		s.Categories = append(s.Categories, CategoryTotal{
			Category: models.Fallback(),
			Seconds:  fallbackTotal,
			Percent:  percent(fallbackTotal, s.Total),
		})
	}

	return s
}

// percent never divides by zero: an empty week reports 0 for every
// category.
func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}

// PlanActual compares planned time against recorded time for a week.
type PlanActual struct {
	Planned int64
	Actual  int64
}

// CompareWeek totals the planned and recorded sessions of a week under the
// same window rule.
func CompareWeek(plans, sessions []models.Session, week Week) PlanActual {
	var pa PlanActual

	for i := range plans {
		if !plans[i].Running() && week.Contains(plans[i].StartTime) {
			pa.Planned += plans[i].Duration
		}
	}

	for i := range sessions {
		if !sessions[i].Running() && week.Contains(sessions[i].StartTime) {
			pa.Actual += sessions[i].Duration
		}
	}

	return pa
}
