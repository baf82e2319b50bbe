package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/internal/ui"
)

const barChartChar = "▇"

const noSessionsMsg = "No sessions found for this week"

// Render writes the weekly report to w: a per-day bar chart, the category
// breakdown with percentages, and the plan-vs-actual line.
func Render(w io.Writer, s Summary, pa PlanActual) {
	start := s.Week.Start.Format("January 02, 2006")
	end := s.Week.Start.AddDate(0, 0, daysInAWeek-1).Format("January 02, 2006")

	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Weekly report: %s - %s", start, end)

	if s.Total == 0 {
		fmt.Fprintln(w, strings.TrimSpace(header))
		fmt.Fprintln(w, noSessionsMsg)

		return
	}

	output := fmt.Sprint(
		header,
		getSummary(s, pa),
		getDayChart(s),
		getCategories(s),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

func getSummary(s Summary, pa PlanActual) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	total := fmt.Sprintf(
		"Time logged: %s\n",
		ui.Green(formatLong(s.Total)),
	)

	planned := ""
	if pa.Planned > 0 {
		planned = fmt.Sprintf(
			"Planned: %s (recorded %s)\n",
			ui.Green(formatLong(pa.Planned)),
			ui.Green(formatLong(pa.Actual)),
		)
	}

	return header + total + planned
}

func getDayChart(s Summary) string {
	header := ui.Blue("\nDaily breakdown (minutes)")

	var bars pterm.Bars

	for _, day := range s.Days {
		date, err := timeutil.FromDateString(day.Date)

		label := day.Date
		if err == nil {
			label = date.Format("Mon 02")
		}

		bars = append(bars, pterm.Bar{
			Value: int(day.Seconds / 60),
			Label: label,
		})
	}

	chart, err := pterm.DefaultBarChart.
		WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func getCategories(s Summary) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Categories")))

	for _, ct := range s.Categories {
		builder.WriteString(fmt.Sprintf(
			"%s: %s (%.1f%%)\n",
			ct.Category.Name,
			ui.Green(formatLong(ct.Seconds)),
			ct.Percent,
		))
	}

	return builder.String()
}

// formatLong expresses a seconds total like "2 hours 30 minutes", limited
// to the two most significant units.
func formatLong(seconds int64) string {
	d := time.Duration(seconds) * time.Second

	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}
