package timer

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

// notify sends a desktop notification summarizing the recorded session.
func (t *Timer) notify(sess *models.Session) {
	if !t.opts.Notification.Enabled {
		return
	}

	msg := fmt.Sprintf(
		"%s recorded (%s)",
		sess.Name,
		timeutil.FormatDuration(sess.Duration),
	)

	err := beeep.Notify("Session complete", msg, "")
	if err != nil {
		slog.Error("unable to send notification", slog.Any("error", err))
	}
}

// runSessionCmd executes the user's configured post-session command.
func (t *Timer) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
