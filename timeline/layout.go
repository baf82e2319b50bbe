package timeline

import (
	"time"
	"unicode/utf8"

	"github.com/timeflowhq/timeflow/internal/config"
	"github.com/timeflowhq/timeflow/internal/models"
)

const (
	// dayHours covers 07:00 through 00:59, nightHours the compressed
	// remainder through 06:59.
	dayHours   = 18
	nightHours = 6
)

const (
	minFontSize = 4.0
	maxFontSize = 9.0
	// fontBudget scales label size against the extent available per rune.
	fontBudget = 2.5
)

// Rates hold the two-rate vertical scale of a day column. The units are
// whatever the rendering surface uses (millimetres for the printed chart).
type Rates struct {
	Day       float64
	Night     float64
	MinExtent float64
}

// DefaultRates sizes a full logical day to roughly the printable height of
// an A4 page.
func DefaultRates() Rates {
	return Rates{Day: 11, Night: 5.5, MinExtent: 1.5}
}

// RatesFromConfig reads the chart scale from the layout configuration,
// falling back to the defaults for unset values.
func RatesFromConfig(cfg *config.Config) Rates {
	r := DefaultRates()

	if cfg.Layout.DayRate > 0 {
		r.Day = cfg.Layout.DayRate
	}

	if cfg.Layout.NightRate > 0 {
		r.Night = cfg.Layout.NightRate
	}

	if cfg.Layout.MinExtent > 0 {
		r.MinExtent = cfg.Layout.MinExtent
	}

	return r
}

// DayExtent is the total height of one day column.
func (r Rates) DayExtent() float64 {
	return dayHours*r.Day + nightHours*r.Night
}

// HourMetric expresses t as hours elapsed since its logical day's 07:00
// start, in [0, 24).
func HourMetric(t time.Time) float64 {
	return t.Sub(LogicalDayStart(t)).Hours()
}

// Offset maps an hour metric to a vertical offset under the two-rate scale.
func (r Rates) Offset(hourMetric float64) float64 {
	if hourMetric < dayHours {
		return hourMetric * r.Day
	}

	return dayHours*r.Day + (hourMetric-dayHours)*r.Night
}

// Extent integrates a duration in hours across the day/night rate boundary.
// A segment spanning the boundary gets the day rate for the portion before
// the 18-hour mark and the night rate after it, never one uniform rate. The
// result is clamped to MinExtent so near-zero segments stay visible.
func (r Rates) Extent(startMetric, hours float64) float64 {
	if hours < 0 {
		hours = 0
	}

	extent := r.Offset(startMetric+hours) - r.Offset(startMetric)

	if extent < r.MinExtent {
		extent = r.MinExtent
	}

	return extent
}

// LayoutItem positions one segment inside a day column for rendering. It is
// recomputed on every render and never persisted.
type LayoutItem struct {
	Segment  models.Segment
	Top      float64
	Height   float64
	Column   int
	FontSize float64
}

// Layout assigns each of a day's segments a vertical position and one of two
// side-by-side columns, processing segments in the order given. A segment
// that overlaps occupants of both columns falls back to column 0, accepting
// visual overlap rather than growing a third column. This greedy two-lane
// assignment is a deliberate simplification, not a general interval
// colouring.
func (r Rates) Layout(segments []models.Segment) []LayoutItem {
	items := make([]LayoutItem, 0, len(segments))

	for _, seg := range segments {
		metric := HourMetric(seg.StartTime)
		top := r.Offset(metric)
		height := r.Extent(metric, seg.EndTime.Sub(seg.StartTime).Hours())

		var col0, col1 bool

		for _, placed := range items {
			if placed.Top < top+height && top < placed.Top+placed.Height {
				switch placed.Column {
				case 0:
					col0 = true
				case 1:
					col1 = true
				}
			}
		}

		column := 0
		if col0 && !col1 {
			column = 1
		}

		items = append(items, LayoutItem{
			Segment:  seg,
			Top:      top,
			Height:   height,
			Column:   column,
			FontSize: labelFontSize(seg.Name, height),
		})
	}

	return items
}

// labelFontSize derives a label size from the extent available per rune,
// clamped so long labels in short segments truncate instead of overflowing.
func labelFontSize(label string, height float64) float64 {
	runes := utf8.RuneCountInString(label)
	if runes == 0 {
		runes = 1
	}

	size := height * fontBudget / float64(runes)

	if size < minFontSize {
		return minFontSize
	}

	if size > maxFontSize {
		return maxFontSize
	}

	return size
}
