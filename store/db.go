package store

import (
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// GetSessions returns recorded sessions whose start time falls within
	// [startTime, endTime), in chronological order.
	GetSessions(startTime, endTime time.Time) ([]models.Session, error)
	// SaveSession stores a completed session. An existing record with the
	// same key is overwritten.
	SaveSession(sess models.Session) error
	// DeleteSessions removes recorded sessions by id.
	DeleteSessions(ids []string) error

	// GetPlans returns planned sessions within the given bounds.
	GetPlans(startTime, endTime time.Time) ([]models.Session, error)
	// SavePlan stores a planned session.
	SavePlan(sess models.Session) error
	// DeletePlans removes planned sessions by id.
	DeletePlans(ids []string) error

	// GetCategories returns the category list in insertion order.
	GetCategories() ([]models.Category, error)
	// SaveCategory creates or updates a category.
	SaveCategory(cat models.Category) error
	// DeleteCategory removes a category. Deleting the last remaining
	// category is refused.
	DeleteCategory(id string) error

	// GetTimer returns the persisted running session for a timer slot, or
	// nil when the slot is idle.
	GetTimer(slot models.Slot) (*models.Session, error)
	// SaveTimer persists the running session for a timer slot so a restart
	// can resume the elapsed-time display.
	SaveTimer(slot models.Slot, sess models.Session) error
	// DeleteTimer clears the persisted running session for a timer slot.
	DeleteTimer(slot models.Slot) error

	// GetBoardTasks returns all kanban board tasks.
	GetBoardTasks() ([]models.BoardTask, error)
	// SaveBoardTask creates or updates a board task.
	SaveBoardTask(task models.BoardTask) error
	// DeleteBoardTask removes a board task.
	DeleteBoardTask(id string) error

	// GetTodos returns all todo items.
	GetTodos() ([]models.Todo, error)
	// SaveTodo creates or updates a todo item.
	SaveTodo(todo models.Todo) error
	// DeleteTodo removes a todo item.
	DeleteTodo(id string) error

	// Close ends the database connection.
	Close() error
}
