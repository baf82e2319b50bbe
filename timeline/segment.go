// Package timeline splits sessions at logical day boundaries and lays the
// resulting segments out on the printable day/hour grid.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

// DayBoundaryHour is the hour at which one logical day ends and the next
// begins. Activity before 07:00 is attributed to the previous day, so
// overnight work lands on the day it started.
const DayBoundaryHour = 7

const hoursInADay = 24

// LogicalDayStart returns 07:00 local time of the logical day containing t.
func LogicalDayStart(t time.Time) time.Time {
	if t.Hour() < DayBoundaryHour {
		t = t.AddDate(0, 0, -1)
	}

	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		DayBoundaryHour,
		0,
		0,
		0,
		t.Location(),
	)
}

// SplitByDay splits a completed session at every 07:00 boundary strictly
// inside its interval. The emitted segments cover [StartTime, EndTime)
// exactly, with no gaps or overlaps, and each carries the date of its
// logical day. Sessions with a zero, inverted, or still-open interval
// produce no segments.
func SplitByDay(sess models.Session) []models.Segment {
	if sess.StartTime.IsZero() || sess.EndTime.IsZero() {
		return nil
	}

	if !sess.StartTime.Before(sess.EndTime) {
		return nil
	}

	var segments []models.Segment

	segStart := sess.StartTime

	for segStart.Before(sess.EndTime) {
		dayStart := LogicalDayStart(segStart)
		dayEnd := dayStart.Add(hoursInADay * time.Hour)

		segEnd := sess.EndTime
		if dayEnd.Before(segEnd) {
			segEnd = dayEnd
		}

		seg := sess
		seg.ID = fmt.Sprintf("%s_%d", sess.ID, segStart.UnixMilli())
		seg.StartTime = segStart
		seg.EndTime = segEnd
		seg.Duration = int64(segEnd.Sub(segStart).Seconds())
		seg.Date = timeutil.ToDateString(dayStart)

		segments = append(segments, seg)

		segStart = segEnd
	}

	return segments
}

// SplitAll splits every session and groups the segments by logical date.
// Segments within a date keep chronological order.
func SplitAll(sessions []models.Session) map[string][]models.Segment {
	byDate := make(map[string][]models.Segment)

	for _, sess := range sessions {
		for _, seg := range SplitByDay(sess) {
			byDate[seg.Date] = append(byDate[seg.Date], seg)
		}
	}

	for _, segments := range byDate {
		sort.SliceStable(segments, func(i, j int) bool {
			return segments[i].StartTime.Before(segments[j].StartTime)
		})
	}

	return byDate
}
