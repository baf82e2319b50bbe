// Package store connects to the data store and manages sessions, plans,
// categories, timers, and the board.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

const (
	bucketSessions   = "sessions"
	bucketPlans      = "plans"
	bucketCategories = "categories"
	bucketTimers     = "timers"
	bucketBoard      = "board"
	bucketTodos      = "todos"
)

// categoryListKey holds the full category list as one ordered JSON array.
var categoryListKey = []byte("list")

var (
	errTimeflowRunning = errors.New(
		"is timeflow already running? Only one instance can be active at a time",
	)
	errLastCategory = errors.New(
		"cannot delete the last remaining category",
	)
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// sessionKey orders session records chronologically while keeping keys
// unique for identical start times.
func sessionKey(sess models.Session) []byte {
	return []byte(fmt.Sprintf("%s_%s", timeutil.ToKey(sess.StartTime), sess.ID))
}

func (c *Client) SaveSession(sess models.Session) error {
	return c.putRecord(bucketSessions, sessionKey(sess), sess)
}

func (c *Client) SavePlan(sess models.Session) error {
	return c.putRecord(bucketPlans, sessionKey(sess), sess)
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
) ([]models.Session, error) {
	return c.getSessionRange(bucketSessions, startTime, endTime)
}

func (c *Client) GetPlans(
	startTime, endTime time.Time,
) ([]models.Session, error) {
	return c.getSessionRange(bucketPlans, startTime, endTime)
}

func (c *Client) DeleteSessions(ids []string) error {
	return c.deleteSessionsByID(bucketSessions, ids)
}

func (c *Client) DeletePlans(ids []string) error {
	return c.deleteSessionsByID(bucketPlans, ids)
}

// getSessionRange scans forward from the first key at or after startTime,
// stopping at endTime (exclusive). Rows that fail to decode are skipped
// rather than failing the whole read.
func (c *Client) getSessionRange(
	bucket string,
	startTime, endTime time.Time,
) ([]models.Session, error) {
	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(bucket)).Cursor()

		for k, v := cur.Seek(timeutil.ToKey(startTime)); k != nil; k, v = cur.Next() {
			var sess models.Session

			if err := json.Unmarshal(v, &sess); err != nil {
				continue
			}

			if !sess.StartTime.Before(endTime) {
				break
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

func (c *Client) deleteSessionsByID(bucket string, ids []string) error {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))

		var keys [][]byte

		cur := b.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var sess models.Session

			if err := json.Unmarshal(v, &sess); err != nil {
				continue
			}

			if _, ok := idSet[sess.ID]; ok {
				keys = append(keys, append([]byte(nil), k...))
			}
		}

		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) GetCategories() ([]models.Category, error) {
	var cats []models.Category

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketCategories)).Get(categoryListKey)
		if len(v) == 0 {
			return nil
		}

		return json.Unmarshal(v, &cats)
	})

	return cats, err
}

func (c *Client) SaveCategory(cat models.Category) error {
	cats, err := c.GetCategories()
	if err != nil {
		return err
	}

	replaced := false

	for i := range cats {
		if cats[i].ID == cat.ID {
			cats[i] = cat
			replaced = true

			break
		}
	}

	if !replaced {
		cats = append(cats, cat)
	}

	return c.saveCategoryList(cats)
}

func (c *Client) DeleteCategory(id string) error {
	cats, err := c.GetCategories()
	if err != nil {
		return err
	}

	if len(cats) <= 1 {
		return errLastCategory
	}

	filtered := cats[:0]

	for _, cat := range cats {
		if cat.ID != id {
			filtered = append(filtered, cat)
		}
	}

	return c.saveCategoryList(filtered)
}

func (c *Client) saveCategoryList(cats []models.Category) error {
	value, err := json.Marshal(cats)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCategories)).Put(categoryListKey, value)
	})
}

func (c *Client) GetTimer(slot models.Slot) (*models.Session, error) {
	var sess *models.Session

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketTimers)).Get([]byte(slot))
		if len(v) == 0 {
			return nil
		}

		var s models.Session

		if err := json.Unmarshal(v, &s); err != nil {
			// a corrupt timer record should not block a new session
			return nil
		}

		sess = &s

		return nil
	})

	return sess, err
}

func (c *Client) SaveTimer(slot models.Slot, sess models.Session) error {
	return c.putRecord(bucketTimers, []byte(slot), sess)
}

func (c *Client) DeleteTimer(slot models.Slot) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTimers)).Delete([]byte(slot))
	})
}

func (c *Client) GetBoardTasks() ([]models.BoardTask, error) {
	var tasks []models.BoardTask

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketBoard)).ForEach(func(_, v []byte) error {
			var task models.BoardTask

			if err := json.Unmarshal(v, &task); err != nil {
				return nil
			}

			tasks = append(tasks, task)

			return nil
		})
	})

	return tasks, err
}

func (c *Client) SaveBoardTask(task models.BoardTask) error {
	return c.putRecord(bucketBoard, []byte(task.ID), task)
}

func (c *Client) DeleteBoardTask(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketBoard)).Delete([]byte(id))
	})
}

func (c *Client) GetTodos() ([]models.Todo, error) {
	var todos []models.Todo

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTodos)).ForEach(func(_, v []byte) error {
			var todo models.Todo

			if err := json.Unmarshal(v, &todo); err != nil {
				return nil
			}

			todos = append(todos, todo)

			return nil
		})
	})

	return todos, err
}

func (c *Client) SaveTodo(todo models.Todo) error {
	return c.putRecord(bucketTodos, []byte(todo.ID), todo)
}

func (c *Client) DeleteTodo(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTodos)).Delete([]byte(id))
	})
}

func (c *Client) putRecord(bucket string, key []byte, record any) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put(key, value)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errTimeflowRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. Buckets are created on
// demand and an empty store is seeded with the default categories.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	buckets := []string{
		bucketSessions,
		bucketPlans,
		bucketCategories,
		bucketTimers,
		bucketBoard,
		bucketTodos,
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	c := &Client{db}

	cats, err := c.GetCategories()
	if err != nil {
		return nil, err
	}

	if len(cats) == 0 {
		if err := c.saveCategoryList(models.DefaultCategories()); err != nil {
			return nil, err
		}
	}

	return c, nil
}
