package timeline_test

import (
	"testing"
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/timeline"
)

// segAt builds a segment on 2024-01-02 at the given wall-clock hours.
func segAt(id string, startHour, endHour float64) models.Segment {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	start := base.Add(time.Duration(startHour * float64(time.Hour)))
	end := base.Add(time.Duration(endHour * float64(time.Hour)))

	return models.Segment{
		ID:        id,
		Name:      "seg " + id,
		StartTime: start,
		EndTime:   end,
		Duration:  int64(end.Sub(start).Seconds()),
		Date:      "2024-01-02",
	}
}

func TestOffsetTwoRateScale(t *testing.T) {
	r := timeline.Rates{Day: 10, Night: 5, MinExtent: 1}

	tests := []struct {
		metric float64
		want   float64
	}{
		{0, 0},
		{1, 10},
		{17.5, 175},
		{18, 180},
		{19, 185},
		{24, 210},
	}

	for _, tt := range tests {
		if got := r.Offset(tt.metric); got != tt.want {
			t.Errorf("Offset(%v) = %v, want %v", tt.metric, got, tt.want)
		}
	}
}

func TestExtentIntegratesAcrossRateBoundary(t *testing.T) {
	r := timeline.Rates{Day: 11, Night: 5.5, MinExtent: 1.5}

	// Starting at hour-metric 17.5 and running to 19: half an hour at the
	// day rate plus one hour at the night rate, by exact arithmetic.
	got := r.Extent(17.5, 1.5)
	want := 0.5*r.Day + 1*r.Night

	if got != want {
		t.Errorf("Extent(17.5, 1.5) = %v, want %v", got, want)
	}
}

func TestExtentMinimumClamp(t *testing.T) {
	r := timeline.Rates{Day: 10, Night: 5, MinExtent: 2}

	if got := r.Extent(3, 0); got != 2 {
		t.Errorf("Extent of a zero-duration segment = %v, want the clamp %v", got, 2.0)
	}

	if got := r.Extent(3, -1); got != 2 {
		t.Errorf("Extent of a negative duration = %v, want the clamp %v", got, 2.0)
	}
}

func TestHourMetric(t *testing.T) {
	tests := []struct {
		in   time.Time
		want float64
	}{
		// 07:00 is the start of the logical day.
		{time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, 1, 2, 12, 30, 0, 0, time.UTC), 5.5},
		// 01:00 is 18 hours after the previous day's 07:00.
		{time.Date(2024, 1, 3, 1, 0, 0, 0, time.UTC), 18},
		{time.Date(2024, 1, 3, 6, 59, 0, 0, time.UTC), 23 + 59.0/60.0},
	}

	for _, tt := range tests {
		if got := timeline.HourMetric(tt.in); got != tt.want {
			t.Errorf("HourMetric(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLayoutPositionMonotonicity(t *testing.T) {
	r := timeline.DefaultRates()

	items := r.Layout([]models.Segment{
		segAt("early", 9, 10),
		segAt("late", 14, 15),
	})

	if items[0].Top >= items[1].Top {
		t.Errorf(
			"expected earlier segment above later one: %v vs %v",
			items[0].Top, items[1].Top,
		)
	}
}

func TestLayoutOverlapColumns(t *testing.T) {
	r := timeline.DefaultRates()

	items := r.Layout([]models.Segment{
		segAt("a", 9, 10),
		segAt("b", 9.5, 10.5),
	})

	if items[0].Column != 0 {
		t.Errorf("first segment column = %d, want 0", items[0].Column)
	}

	if items[1].Column != 1 {
		t.Errorf("overlapping segment column = %d, want 1", items[1].Column)
	}
}

func TestLayoutTripleOverlapFallsBackToColumnZero(t *testing.T) {
	r := timeline.DefaultRates()

	items := r.Layout([]models.Segment{
		segAt("a", 9, 11),
		segAt("b", 9.5, 11.5),
		segAt("c", 10, 10.5),
	})

	want := []int{0, 1, 0}

	for i, item := range items {
		if item.Column != want[i] {
			t.Errorf("segment %d column = %d, want %d", i, item.Column, want[i])
		}
	}
}

func TestLayoutNonOverlappingStayInColumnZero(t *testing.T) {
	r := timeline.DefaultRates()

	items := r.Layout([]models.Segment{
		segAt("a", 9, 10),
		segAt("b", 10, 11),
		segAt("c", 11.5, 12),
	})

	for i, item := range items {
		if item.Column != 0 {
			t.Errorf("segment %d column = %d, want 0", i, item.Column)
		}
	}
}

func TestLayoutFontSizeClamped(t *testing.T) {
	r := timeline.DefaultRates()

	long := segAt("long", 9, 9.25)
	long.Name = "a very long label that cannot possibly fit in a short segment"

	short := segAt("short", 10, 14)
	short.Name = "ok"

	items := r.Layout([]models.Segment{long, short})

	if items[0].FontSize != 4.0 {
		t.Errorf("long label font size = %v, want the minimum %v", items[0].FontSize, 4.0)
	}

	if items[1].FontSize != 9.0 {
		t.Errorf("short label font size = %v, want the maximum %v", items[1].FontSize, 9.0)
	}
}

func TestDayExtent(t *testing.T) {
	r := timeline.Rates{Day: 11, Night: 5.5, MinExtent: 1.5}

	if got := r.DayExtent(); got != 18*11+6*5.5 {
		t.Errorf("DayExtent = %v, want %v", got, 18*11+6*5.5)
	}
}
