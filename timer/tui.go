package timer

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	labelStyle = lipgloss.NewStyle().
			Faint(true).
			MarginBottom(1)

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0)

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)

// view is the live elapsed-time display for a running timer. Quitting
// detaches from the timer and leaves it running; "s" stops and records the
// session.
type view struct {
	timer    *Timer
	category models.Category
	elapsed  int64
	stopped  *models.Session
	err      error
}

func newView(t *Timer, cat models.Category) view {
	return view{
		timer:    t,
		category: cat,
		elapsed:  t.Elapsed(time.Now()),
	}
}

func (v view) Init() tea.Cmd {
	return tick()
}

func (v view) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		v.elapsed = v.timer.Elapsed(time.Time(msg))
		return v, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit

		case "s", "enter":
			v.stopped, v.err = v.timer.Stop(time.Now())
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v view) View() string {
	if v.stopped != nil || v.err != nil {
		return ""
	}

	sess := v.timer.Session()
	if sess == nil {
		return ""
	}

	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(v.category.Color)).
		Render("●")

	header := fmt.Sprintf("%s %s", dot, nameStyle.Render(sess.Name))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render(fmt.Sprintf("%s · %s", v.timer.slot, v.category.Name)),
		header,
		clockStyle.Render(timeutil.FormatClock(v.elapsed)),
		helpStyle.Render("s: stop and record · q: detach"),
	)
}

// Run shows the live timer view until the user stops or detaches. It
// returns the recorded session when the user stopped from the view, or nil
// when they detached.
func Run(t *Timer, cat models.Category) (*models.Session, error) {
	final, err := tea.NewProgram(newView(t, cat)).Run()
	if err != nil {
		return nil, err
	}

	v, ok := final.(view)
	if !ok {
		return nil, nil
	}

	if v.err != nil {
		return v.stopped, v.err
	}

	return v.stopped, nil
}
