package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/pterm/pterm"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/store"
	"github.com/timeflowhq/timeflow/timeline"
)

//go:embed web/*
var web embed.FS

var tpl = template.Must(
	template.New("index.html").ParseFS(web, "web/index.html"),
)

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err != nil {
		pterm.Error.Println(err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type chartItem struct {
	Top      float64
	Height   float64
	Left     float64
	Width    float64
	FontSize float64
	Color    string
	Label    string
	Title    string
	Dashed   bool
}

type chartDay struct {
	Date  string
	Label string
	Total string
	Items []chartItem
}

type hourMark struct {
	Offset float64
	Label  string
}

type templateData struct {
	RangeLabel string
	DayExtent  float64
	Hours      []hourMark
	Days       []chartDay
	Summary    Summary
	TotalLabel string
}

// chart renders the printable weekly timeline for the requested week.
type chart struct {
	db    store.DB
	rates timeline.Rates
}

// laneGeometry maps a column index to the horizontal placement of an item,
// in percent of the day column width.
func laneGeometry(column, lanes int) (left, width float64) {
	if lanes < 2 {
		return 2, 96
	}

	if column == 0 {
		return 2, 47
	}

	return 51, 47
}

func (c *chart) buildDay(
	date string,
	items []timeline.LayoutItem,
	plans []timeline.LayoutItem,
	cats []models.Category,
) chartDay {
	day := chartDay{Date: date}

	if d, err := timeutil.FromDateString(date); err == nil {
		day.Label = d.Format("Mon 02")
	}

	var total int64

	appendItems := func(layout []timeline.LayoutItem, dashed bool) {
		lanes := 1

		for _, item := range layout {
			if item.Column > 0 {
				lanes = 2
			}
		}

		for _, item := range layout {
			cat := models.Resolve(cats, item.Segment.CategoryID)
			left, width := laneGeometry(item.Column, lanes)

			day.Items = append(day.Items, chartItem{
				Top:      item.Top,
				Height:   item.Height,
				Left:     left,
				Width:    width,
				FontSize: item.FontSize,
				Color:    cat.Color,
				Label:    item.Segment.Name,
				Title: fmt.Sprintf(
					"%s (%s)",
					item.Segment.Name,
					timeutil.FormatDuration(item.Segment.Duration),
				),
				Dashed: dashed,
			})
		}
	}

	appendItems(items, false)
	appendItems(plans, true)

	for _, item := range items {
		total += item.Segment.Duration
	}

	day.Total = timeutil.FormatDuration(total)

	return day
}

func (c *chart) hourMarks() []hourMark {
	marks := make([]hourMark, 0, 24)

	for metric := 0; metric < 24; metric++ {
		wallClock := (timeline.DayBoundaryHour + metric) % 24

		marks = append(marks, hourMark{
			Offset: c.rates.Offset(float64(metric)),
			Label:  fmt.Sprintf("%d", wallClock),
		})
	}

	return marks
}

func (c *chart) index(w http.ResponseWriter, r *http.Request) error {
	week := WeekOf(time.Now())

	if q := r.URL.Query().Get("week"); q != "" {
		if t, err := timeutil.FromDateString(q); err == nil {
			week = WeekOf(t.Add(timeline.DayBoundaryHour * time.Hour))
		}
	}

	sessions, err := c.db.GetSessions(week.Start, week.End())
	if err != nil {
		return err
	}

	plans, err := c.db.GetPlans(week.Start, week.End())
	if err != nil {
		return err
	}

	cats, err := c.db.GetCategories()
	if err != nil {
		return err
	}

	summary := AggregateWeek(sessions, cats, week)

	segsByDate := timeline.SplitAll(sessions)
	plansByDate := timeline.SplitAll(plans)

	data := templateData{
		RangeLabel: fmt.Sprintf(
			"%s - %s",
			week.Start.Format("Jan 02, 2006"),
			week.Start.AddDate(0, 0, daysInAWeek-1).Format("Jan 02, 2006"),
		),
		DayExtent:  c.rates.DayExtent(),
		Hours:      c.hourMarks(),
		Summary:    summary,
		TotalLabel: timeutil.FormatDuration(summary.Total),
	}

	for _, date := range week.Dates() {
		data.Days = append(data.Days, c.buildDay(
			date,
			c.rates.Layout(segsByDate[date]),
			c.rates.Layout(plansByDate[date]),
			cats,
		))
	}

	var buf bytes.Buffer

	if err := tpl.Execute(&buf, &data); err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())

	return err
}

// Serve exposes the printable weekly chart on the given port until the
// process is interrupted.
func Serve(db store.DB, rates timeline.Rates, port uint) error {
	c := &chart{db: db, rates: rates}

	mux := http.NewServeMux()
	mux.Handle("/", errorHandler(c.index))

	pterm.Info.Printfln("starting report server on port: %d", port)

	//nolint:gosec // no timeout is ok for a local print server
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
