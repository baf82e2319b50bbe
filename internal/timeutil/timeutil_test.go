package timeutil_test

import (
	"testing"
	"time"

	"github.com/timeflowhq/timeflow/internal/timeutil"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0h 0m"},
		{-120, "0h 0m"},
		{59, "0h 0m"},
		{60, "0h 1m"},
		{3600, "1h 0m"},
		{6000, "1h 40m"},
		{86400, "24h 0m"},
	}

	for _, tt := range tests {
		got := timeutil.FormatDuration(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{-5, "00:00:00"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
		{37230, "10:20:30"},
	}

	for _, tt := range tests {
		got := timeutil.FormatClock(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "friday steps back to monday",
			in:   time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "monday is unchanged",
			in:   time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday counts as day seven",
			in:   time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeutil.StartOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateStringRoundTrip(t *testing.T) {
	in := time.Date(2024, 3, 9, 23, 45, 0, 0, time.Local)

	s := timeutil.ToDateString(in)
	if s != "2024-03-09" {
		t.Fatalf("ToDateString = %q, want %q", s, "2024-03-09")
	}

	back, err := timeutil.FromDateString(s)
	if err != nil {
		t.Fatalf("FromDateString: %v", err)
	}

	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)
	if !back.Equal(want) {
		t.Errorf("FromDateString(%q) = %v, want %v", s, back, want)
	}
}

func TestGenerateID(t *testing.T) {
	ts := time.Date(2024, 2, 27, 8, 32, 10, 0, time.UTC)

	id := timeutil.GenerateID(ts)
	if len(id) != len("20240227-083210-xxxxx") {
		t.Errorf("GenerateID length = %d, want %d", len(id), len("20240227-083210-xxxxx"))
	}

	if id[:15] != "20240227-083210" {
		t.Errorf("GenerateID prefix = %q, want %q", id[:15], "20240227-083210")
	}

	if other := timeutil.GenerateID(ts); other == id {
		t.Error("GenerateID: expected distinct suffixes for repeated calls")
	}
}
