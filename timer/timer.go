// Package timer operates the main and sub session timers and records
// completed sessions.
package timer

import (
	"strings"
	"time"

	"github.com/timeflowhq/timeflow/internal/config"
	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/store"
)

// Timer is the start/stop state machine for one timer slot. The main and
// sub slots hold independent Timer instances that never block each other.
type Timer struct {
	db   store.DB
	opts *config.Config
	slot models.Slot
	sess *models.Session
}

// New returns the timer for a slot, resuming a persisted running session if
// one survives from a previous process.
func New(db store.DB, opts *config.Config, slot models.Slot) *Timer {
	t := &Timer{db: db, opts: opts, slot: slot}

	if sess, err := db.GetTimer(slot); err == nil && sess != nil {
		t.sess = sess
	}

	return t
}

// Running reports whether a session is in progress on this slot.
func (t *Timer) Running() bool {
	return t.sess != nil
}

// Session returns the in-flight session, or nil while idle.
func (t *Timer) Session() *models.Session {
	return t.sess
}

// Start transitions the slot from idle to running, capturing the start
// time. A name that is empty after trimming is rejected without error, as
// is a start while a session is already running; the caller is expected to
// validate before invoking.
func (t *Timer) Start(name, categoryID string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" || t.sess != nil {
		return nil
	}

	sess := models.Session{
		ID:         timeutil.GenerateID(now),
		Name:       name,
		CategoryID: categoryID,
		StartTime:  now,
	}

	if err := t.db.SaveTimer(t.slot, sess); err != nil {
		return err
	}

	t.sess = &sess

	return nil
}

// Elapsed returns whole seconds since the session started. It is never
// negative, even when clock skew puts now before the start time, and it is
// recomputed from the wall clock on every call so repeated ticks cannot go
// stale.
func (t *Timer) Elapsed(now time.Time) int64 {
	if t.sess == nil {
		return 0
	}

	secs := int64(now.Sub(t.sess.StartTime) / time.Second)
	if secs < 0 {
		return 0
	}

	return secs
}

// Stop finalizes the running session into a completed record attributed to
// the calendar day of now, clears the persisted timer state, and returns
// the recorded session. Stopping an idle slot is a no-op returning nil.
func (t *Timer) Stop(now time.Time) (*models.Session, error) {
	if t.sess == nil {
		return nil, nil
	}

	sess := *t.sess
	sess.EndTime = now
	sess.Duration = t.Elapsed(now)
	sess.Date = timeutil.ToDateString(now)

	if err := t.db.SaveSession(sess); err != nil {
		return nil, err
	}

	if err := t.db.DeleteTimer(t.slot); err != nil {
		return nil, err
	}

	t.sess = nil

	t.notify(&sess)

	if err := t.runSessionCmd(t.opts.Settings.SessionCmd); err != nil {
		return &sess, err
	}

	return &sess, nil
}
