package app

import (
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/internal/ui"
	"github.com/timeflowhq/timeflow/report"
	"github.com/timeflowhq/timeflow/store"
	"github.com/timeflowhq/timeflow/timeline"
)

// listWindow resolves the time range a list command covers: today's logical
// day by default, another day with --date, or that day's whole week with
// --week.
func listWindow(ctx *cli.Context, now time.Time) (start, end time.Time, err error) {
	day := timeline.LogicalDayStart(now)

	if v := ctx.String("date"); v != "" {
		t, err := timeutil.FromDateString(v)
		if err != nil {
			return start, end, err
		}

		day = t.Add(timeline.DayBoundaryHour * time.Hour)
	}

	if ctx.Bool("week") {
		week := report.WeekOf(day)
		return week.Start, week.End(), nil
	}

	return day, day.Add(24 * time.Hour), nil
}

func fetchSessions(
	ctx *cli.Context,
	db store.DB,
	start, end time.Time,
) ([]models.Session, error) {
	if ctx.Bool("plan") {
		return db.GetPlans(start, end)
	}

	return db.GetSessions(start, end)
}

// listAction prints a table of the sessions recorded in the selected
// window.
func listAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	start, end, err := listWindow(ctx, time.Now())
	if err != nil {
		return err
	}

	sessions, err := fetchSessions(ctx, db, start, end)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(sessions) == 0 {
		pterm.Info.Println("no sessions in this period")
		return nil
	}

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	data := [][]string{
		{"id", "name", "category", "date", "start", "end", "duration"},
	}

	for i := range sessions {
		sess := sessions[i]

		data = append(data, []string{
			sess.ID,
			sess.Name,
			models.Resolve(cats, sess.CategoryID).Name,
			sess.Date,
			sess.StartTime.Format("15:04"),
			sess.EndTime.Format("15:04"),
			timeutil.FormatDuration(sess.Duration),
		})
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

// deleteAction removes the sessions named by id, after confirmation.
func deleteAction(ctx *cli.Context) error {
	ids := ctx.Args().Slice()
	if len(ids) == 0 {
		pterm.Warning.Println("specify at least one session id")
		return nil
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	var confirmed bool

	err = huh.NewConfirm().
		Title(pterm.Sprintf("Delete %d session(s)?", len(ids))).
		Value(&confirmed).
		Run()
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	if ctx.Bool("plan") {
		err = db.DeletePlans(ids)
	} else {
		err = db.DeleteSessions(ids)
	}

	if err != nil {
		return err
	}

	pterm.Success.Printfln("deleted %d session(s)", len(ids))

	return nil
}

// reportAction summarises a week in the terminal, or serves the printable
// chart with --serve.
func reportAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if ctx.Bool("serve") {
		return report.Serve(
			db,
			timeline.RatesFromConfig(appConfig),
			ctx.Uint("port"),
		)
	}

	week := report.WeekOf(time.Now())

	if v := ctx.String("week"); v != "" {
		t, err := timeutil.FromDateString(v)
		if err != nil {
			return err
		}

		week = report.WeekOf(t.Add(timeline.DayBoundaryHour * time.Hour))
	}

	sessions, err := db.GetSessions(week.Start, week.End())
	if err != nil {
		return err
	}

	plans, err := db.GetPlans(week.Start, week.End())
	if err != nil {
		return err
	}

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	summary := report.AggregateWeek(sessions, cats, week)
	pa := report.CompareWeek(plans, sessions, week)

	report.Render(os.Stdout, summary, pa)

	return nil
}
