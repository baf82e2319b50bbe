package timer_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/timeflowhq/timeflow/internal/config"
	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/store"
	"github.com/timeflowhq/timeflow/timer"
)

// testConfig keeps notifications and the session hook disabled so tests
// stay silent.
func testConfig() *config.Config {
	return &config.Config{}
}

func newTestStore(t *testing.T) *store.Client {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "timeflow.db"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestStartRejectsEmptyName(t *testing.T) {
	db := newTestStore(t)
	tm := timer.New(db, testConfig(), models.SlotMain)

	for _, name := range []string{"", "   ", "\t\n"} {
		if err := tm.Start(name, "work", time.Now()); err != nil {
			t.Fatalf("Start(%q): %v", name, err)
		}

		if tm.Running() {
			t.Fatalf("Start(%q): timer should remain idle", name)
		}
	}
}

func TestStartStopRecordsSession(t *testing.T) {
	db := newTestStore(t)
	tm := timer.New(db, testConfig(), models.SlotMain)

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)

	if err := tm.Start("  deep work  ", "work", start); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if !tm.Running() {
		t.Fatal("expected timer to be running")
	}

	stop := start.Add(90 * time.Minute)

	sess, err := tm.Stop(stop)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if sess == nil {
		t.Fatal("Stop returned no session")
	}

	if sess.Name != "deep work" {
		t.Errorf("Name = %q, want %q", sess.Name, "deep work")
	}

	if sess.Duration != 90*60 {
		t.Errorf("Duration = %d, want %d", sess.Duration, 90*60)
	}

	if sess.Date != "2024-01-02" {
		t.Errorf("Date = %q, want %q", sess.Date, "2024-01-02")
	}

	if !sess.EndTime.Equal(stop) {
		t.Errorf("EndTime = %v, want %v", sess.EndTime, stop)
	}

	if tm.Running() {
		t.Error("expected timer to be idle after stop")
	}

	// The record must land in the session log.
	recorded, err := db.GetSessions(start.Add(-time.Hour), stop)
	if err != nil {
		t.Fatal(err)
	}

	if len(recorded) != 1 || recorded[0].ID != sess.ID {
		t.Errorf("recorded sessions = %v, want the stopped session", recorded)
	}
}

func TestElapsedNeverNegative(t *testing.T) {
	db := newTestStore(t)
	tm := timer.New(db, testConfig(), models.SlotMain)

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)

	if err := tm.Start("work", "work", start); err != nil {
		t.Fatal(err)
	}

	if got := tm.Elapsed(start.Add(-time.Minute)); got != 0 {
		t.Errorf("Elapsed with skewed clock = %d, want 0", got)
	}

	if got := tm.Elapsed(start.Add(2500 * time.Millisecond)); got != 2 {
		t.Errorf("Elapsed = %d, want 2 (floored)", got)
	}
}

func TestStopWhileIdleIsNoOp(t *testing.T) {
	db := newTestStore(t)
	tm := timer.New(db, testConfig(), models.SlotMain)

	sess, err := tm.Stop(time.Now())
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if sess != nil {
		t.Errorf("expected no session from an idle stop, got %v", sess)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	db := newTestStore(t)
	cfg := testConfig()

	main := timer.New(db, cfg, models.SlotMain)
	sub := timer.New(db, cfg, models.SlotSub)

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)

	if err := main.Start("main task", "work", start); err != nil {
		t.Fatal(err)
	}

	if err := sub.Start("background music", "sub", start.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}

	// Stopping the sub slot must not touch the main slot.
	if _, err := sub.Stop(start.Add(30 * time.Minute)); err != nil {
		t.Fatal(err)
	}

	if !main.Running() {
		t.Error("main timer stopped by a sub timer stop")
	}

	if sub.Running() {
		t.Error("sub timer still running after stop")
	}
}

func TestRunningSessionSurvivesRestart(t *testing.T) {
	db := newTestStore(t)
	cfg := testConfig()

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)

	first := timer.New(db, cfg, models.SlotMain)
	if err := first.Start("long haul", "work", start); err != nil {
		t.Fatal(err)
	}

	// A fresh Timer stands in for a new process.
	second := timer.New(db, cfg, models.SlotMain)

	if !second.Running() {
		t.Fatal("expected the resumed timer to be running")
	}

	if got := second.Session().Name; got != "long haul" {
		t.Errorf("resumed session name = %q, want %q", got, "long haul")
	}

	if got := second.Elapsed(start.Add(time.Hour)); got != 3600 {
		t.Errorf("resumed Elapsed = %d, want 3600", got)
	}
}
