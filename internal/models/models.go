// Package models defines the records shared between the store, the timers,
// and the reporting pipeline.
package models

import "time"

// Slot identifies one of the two independent timers. The main and sub timers
// run in parallel and never share state.
type Slot string

const (
	SlotMain Slot = "main"
	SlotSub  Slot = "sub"
)

// BoardStatus is the lane a board task sits in.
type BoardStatus string

const (
	StatusTodo  BoardStatus = "todo"
	StatusDoing BoardStatus = "doing"
	StatusDone  BoardStatus = "done"
)

// Category groups sessions for reporting. Sessions reference categories by
// id only; a dangling reference is resolved to Fallback at lookup time.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Fallback is substituted wherever a session references a category that no
// longer exists.
func Fallback() Category {
	return Category{ID: "unknown", Name: "unknown", Color: "#cccccc"}
}

// DefaultCategories returns the category set seeded into an empty store.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work", Color: "#3b82f6"},
		{ID: "study", Name: "Study", Color: "#10b981"},
		{ID: "life", Name: "Life", Color: "#f59e0b"},
		{ID: "rest", Name: "Rest", Color: "#8b5cf6"},
		{ID: "sport", Name: "Sport", Color: "#ef4444"},
		{ID: "other", Name: "Other", Color: "#64748b"},
		{ID: "sub", Name: "Parallel", Color: "#a8a29e"},
	}
}

// Resolve finds a category by id in cats, falling back to the placeholder
// category when the id is missing or unknown.
func Resolve(cats []Category, id string) Category {
	for _, c := range cats {
		if c.ID == id {
			return c
		}
	}

	return Fallback()
}

// Session is one recorded or in-progress work interval.
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	StartTime  time.Time `json:"start_time"`
	// EndTime is zero while the session is still running.
	EndTime time.Time `json:"end_time"`
	// Duration is the elapsed wall-clock seconds, set when the session is
	// stopped. It stays 0 while running.
	Duration int64 `json:"duration"`
	// Date is the logical day (YYYY-MM-DD) the session is attributed to.
	Date string `json:"date"`
}

// Running reports whether the session has not been stopped yet.
func (s *Session) Running() bool {
	return s.EndTime.IsZero()
}

// Segment is the portion of a Session confined to a single logical day,
// produced by splitting at 07:00 boundaries. Segments are derived on demand
// and never persisted.
type Segment = Session

// BoardTask is an entry on the kanban board.
type BoardTask struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Status     BoardStatus `json:"status"`
	CategoryID string      `json:"category_id"`
	// EstimatedDuration is the planned effort in seconds.
	EstimatedDuration int64 `json:"estimated_duration"`
}

// Todo is a checklist item.
type Todo struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}
