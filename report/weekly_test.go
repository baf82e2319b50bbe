package report_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/report"
)

// monday is 2024-01-01, a Monday.
var monday = time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC)

func completed(id, catID string, start time.Time, dur int64) models.Session {
	return models.Session{
		ID:         id,
		Name:       "session " + id,
		CategoryID: catID,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(dur) * time.Second),
		Duration:   dur,
		Date:       start.Format("2006-01-02"),
	}
}

func testCategories() []models.Category {
	return []models.Category{
		{ID: "work", Name: "Work", Color: "#3b82f6"},
		{ID: "study", Name: "Study", Color: "#10b981"},
	}
}

func TestWeekOfLogicalDayRule(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midweek afternoon",
			in:   time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC),
			want: monday,
		},
		{
			name: "monday 06:59 belongs to the previous week",
			in:   time.Date(2024, 1, 1, 6, 59, 0, 0, time.UTC),
			want: time.Date(2023, 12, 25, 7, 0, 0, 0, time.UTC),
		},
		{
			name: "monday 07:00 starts the new week",
			in:   monday,
			want: monday,
		},
		{
			name: "sunday 23:30 stays in the current week",
			in:   time.Date(2024, 1, 7, 23, 30, 0, 0, time.UTC),
			want: monday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := report.WeekOf(tt.in)
			if !got.Start.Equal(tt.want) {
				t.Errorf("WeekOf(%v).Start = %v, want %v", tt.in, got.Start, tt.want)
			}
		})
	}
}

func TestAggregateWeekDayBuckets(t *testing.T) {
	week := report.Week{Start: monday}

	sessions := []models.Session{
		completed("a", "work", monday.Add(2*time.Hour), 3600),
		// 02:00 Tuesday is still logical Monday.
		completed("b", "work", monday.Add(19*time.Hour), 1800),
		completed("c", "study", monday.AddDate(0, 0, 3), 7200),
		// Outside the window entirely.
		completed("d", "work", monday.AddDate(0, 0, 9), 600),
	}

	s := report.AggregateWeek(sessions, testCategories(), week)

	if s.Total != 3600+1800+7200 {
		t.Errorf("Total = %d, want %d", s.Total, 3600+1800+7200)
	}

	if s.Days[0].Seconds != 3600+1800 {
		t.Errorf("Monday total = %d, want %d", s.Days[0].Seconds, 3600+1800)
	}

	if s.Days[3].Seconds != 7200 {
		t.Errorf("Thursday total = %d, want %d", s.Days[3].Seconds, 7200)
	}

	if s.Days[0].Date != "2024-01-01" {
		t.Errorf("Days[0].Date = %q, want %q", s.Days[0].Date, "2024-01-01")
	}
}

func TestAggregateWeekReconciliation(t *testing.T) {
	week := report.Week{Start: monday}

	sessions := []models.Session{
		completed("a", "work", monday.Add(2*time.Hour), 3600),
		completed("b", "study", monday.AddDate(0, 0, 1), 5400),
		completed("c", "missing-cat", monday.AddDate(0, 0, 2), 1200),
	}

	s := report.AggregateWeek(sessions, testCategories(), week)

	var catSum int64
	for _, ct := range s.Categories {
		catSum += ct.Seconds
	}

	if catSum != s.Total {
		t.Errorf("sum of category totals = %d, want week total %d", catSum, s.Total)
	}

	var daySum int64
	for _, day := range s.Days {
		daySum += day.Seconds
	}

	if daySum != s.Total {
		t.Errorf("sum of day totals = %d, want week total %d", daySum, s.Total)
	}
}

func TestAggregateWeekFallbackCategory(t *testing.T) {
	week := report.Week{Start: monday}

	sessions := []models.Session{
		completed("a", "deleted-1", monday.Add(2*time.Hour), 600),
		completed("b", "deleted-2", monday.Add(4*time.Hour), 900),
	}

	s := report.AggregateWeek(sessions, testCategories(), week)

	if len(s.Categories) != 1 {
		t.Fatalf("expected one pooled fallback row, got %d", len(s.Categories))
	}

	fallback := s.Categories[0]

	if fallback.Category.Name != "unknown" {
		t.Errorf("fallback name = %q, want %q", fallback.Category.Name, "unknown")
	}

	if fallback.Seconds != 1500 {
		t.Errorf("fallback total = %d, want 1500", fallback.Seconds)
	}

	if fallback.Percent != 100 {
		t.Errorf("fallback percent = %v, want 100", fallback.Percent)
	}
}

func TestAggregateWeekEmptyInput(t *testing.T) {
	week := report.Week{Start: monday}

	s := report.AggregateWeek(nil, testCategories(), week)

	if s.Total != 0 {
		t.Errorf("Total = %d, want 0", s.Total)
	}

	if len(s.Categories) != 0 {
		t.Errorf("expected no category rows, got %v", s.Categories)
	}

	for _, ct := range s.Categories {
		if ct.Percent != 0 {
			t.Errorf("percent = %v for an empty week, want 0", ct.Percent)
		}
	}
}

func TestAggregateWeekSkipsRunningSessions(t *testing.T) {
	week := report.Week{Start: monday}

	running := models.Session{
		ID:         "r",
		Name:       "in flight",
		CategoryID: "work",
		StartTime:  monday.Add(time.Hour),
	}

	s := report.AggregateWeek([]models.Session{running}, testCategories(), week)

	if s.Total != 0 {
		t.Errorf("Total = %d, want 0 for a running-only input", s.Total)
	}
}

func TestAggregateWeekIdempotent(t *testing.T) {
	week := report.Week{Start: monday}

	sessions := []models.Session{
		completed("a", "work", monday.Add(2*time.Hour), 3600),
		completed("b", "study", monday.AddDate(0, 0, 4), 5400),
	}

	first := report.AggregateWeek(sessions, testCategories(), week)
	second := report.AggregateWeek(sessions, testCategories(), week)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated aggregation differs (-first +second):\n%s", diff)
	}
}

func TestCompareWeek(t *testing.T) {
	week := report.Week{Start: monday}

	plans := []models.Session{
		completed("p1", "work", monday.Add(2*time.Hour), 7200),
		completed("p2", "work", monday.AddDate(0, 0, 9), 3600),
	}

	sessions := []models.Session{
		completed("a", "work", monday.Add(3*time.Hour), 5400),
	}

	pa := report.CompareWeek(plans, sessions, week)

	if pa.Planned != 7200 {
		t.Errorf("Planned = %d, want 7200 (out-of-week plan excluded)", pa.Planned)
	}

	if pa.Actual != 5400 {
		t.Errorf("Actual = %d, want 5400", pa.Actual)
	}
}
