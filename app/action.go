package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	dateparser "github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timeflowhq/timeflow/internal/config"
	"github.com/timeflowhq/timeflow/internal/logging"
	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/internal/ui"
	"github.com/timeflowhq/timeflow/store"
	"github.com/timeflowhq/timeflow/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envTimeflowNoColor = "TIMEFLOW_NO_COLOR"
)

var appConfig *config.Config

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envTimeflowNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	config.InitializePaths()

	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	appConfig = cfg
	ui.DarkTheme = cfg.Display.DarkTheme

	logging.Init(config.LogFilePath())

	return nil
}

func openStore() (store.DB, error) {
	return store.NewClient(config.DBFilePath())
}

func slotFromCtx(ctx *cli.Context) models.Slot {
	if ctx.Bool("sub") {
		return models.SlotSub
	}

	return models.SlotMain
}

// parseTime interprets a user-supplied time string, accepting both absolute
// and relative forms.
func parseTime(value string, now time.Time) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: now,
	}, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", value, err)
	}

	return dt.Time, nil
}

// pickCategory resolves the --category flag, or prompts when it is absent.
// The sub timer defaults to the dedicated parallel category so starting it
// stays a single keystroke.
func pickCategory(
	ctx *cli.Context,
	cats []models.Category,
	slot models.Slot,
) (models.Category, error) {
	if v := ctx.String("category"); v != "" {
		for _, c := range cats {
			if c.ID == v || strings.EqualFold(c.Name, v) {
				return c, nil
			}
		}

		return models.Category{}, fmt.Errorf("unknown category: %s", v)
	}

	if slot == models.SlotSub {
		for _, c := range cats {
			if c.ID == "sub" {
				return c, nil
			}
		}
	}

	opts := make([]huh.Option[string], 0, len(cats))
	for _, c := range cats {
		opts = append(opts, huh.NewOption(c.Name, c.ID))
	}

	var id string

	err := huh.NewSelect[string]().
		Title("Select a category").
		Options(opts...).
		Value(&id).
		Run()
	if err != nil {
		return models.Category{}, fmt.Errorf("category prompt failed: %w", err)
	}

	return models.Resolve(cats, id), nil
}

// startAction handles the start command which begins a session on the main
// or sub timer and shows the live elapsed display.
func startAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		pterm.Warning.Println("a session name is required")
		return nil
	}

	slot := slotFromCtx(ctx)

	t := timer.New(db, appConfig, slot)
	if t.Running() {
		return fmt.Errorf(
			"the %s timer is already running: %s",
			slot,
			t.Session().Name,
		)
	}

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	cat, err := pickCategory(ctx, cats, slot)
	if err != nil {
		return err
	}

	if err := t.Start(name, cat.ID, time.Now()); err != nil {
		return err
	}

	slog.Info("session started",
		slog.String("slot", string(slot)),
		slog.String("name", name),
		slog.String("category", cat.ID),
	)

	sess, err := timer.Run(t, cat)
	if err != nil {
		return err
	}

	if sess == nil {
		pterm.Info.Printfln(
			"the %s timer keeps running, stop it with: timeflow stop%s",
			slot,
			subHint(slot),
		)

		return nil
	}

	printRecorded(sess)

	return nil
}

// stopAction handles the stop command which finalizes the running session
// on the selected timer.
func stopAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	slot := slotFromCtx(ctx)

	sess, err := timer.New(db, appConfig, slot).Stop(time.Now())
	if err != nil {
		return err
	}

	if sess == nil {
		pterm.Info.Printfln("the %s timer is not running", slot)
		return nil
	}

	slog.Info("session recorded",
		slog.String("slot", string(slot)),
		slog.String("id", sess.ID),
		slog.Int64("duration", sess.Duration),
	)

	printRecorded(sess)

	return nil
}

// statusAction prints one row per timer slot.
func statusAction(_ *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	now := time.Now()

	data := [][]string{
		{"timer", "session", "category", "started", "elapsed"},
	}

	for _, slot := range []models.Slot{models.SlotMain, models.SlotSub} {
		t := timer.New(db, appConfig, slot)

		if !t.Running() {
			data = append(data, []string{string(slot), "-", "-", "-", "-"})
			continue
		}

		sess := t.Session()

		data = append(data, []string{
			string(slot),
			sess.Name,
			models.Resolve(cats, sess.CategoryID).Name,
			sess.StartTime.Format("15:04"),
			timeutil.FormatClock(t.Elapsed(now)),
		})
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

// addAction records a session directly from its start and end times, or
// files it as a plan with --plan.
func addAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		pterm.Warning.Println("a session name is required")
		return nil
	}

	now := time.Now()

	start, err := parseTime(ctx.String("start"), now)
	if err != nil {
		return err
	}

	end, err := parseTime(ctx.String("end"), now)
	if err != nil {
		return err
	}

	// An end at or before the start means the session ran past midnight.
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	cat, err := pickCategory(ctx, cats, models.SlotMain)
	if err != nil {
		return err
	}

	sess := models.Session{
		ID:         timeutil.GenerateID(start),
		Name:       name,
		CategoryID: cat.ID,
		StartTime:  start,
		EndTime:    end,
		Duration:   int64(end.Sub(start) / time.Second),
		Date:       timeutil.ToDateString(start),
	}

	if ctx.Bool("plan") {
		if err := db.SavePlan(sess); err != nil {
			return err
		}

		pterm.Success.Printfln("planned: %s", describe(&sess))

		return nil
	}

	if err := db.SaveSession(sess); err != nil {
		return err
	}

	printRecorded(&sess)

	return nil
}

func printRecorded(sess *models.Session) {
	pterm.Success.Printfln("recorded: %s", describe(sess))
}

func describe(sess *models.Session) string {
	return fmt.Sprintf(
		"%s (%s, %s - %s)",
		ui.Highlight(sess.Name),
		ui.Green(timeutil.FormatDuration(sess.Duration)),
		sess.StartTime.Format("Jan 02 15:04"),
		sess.EndTime.Format("15:04"),
	)
}

func subHint(slot models.Slot) string {
	if slot == models.SlotSub {
		return " --sub"
	}

	return ""
}
