// Package store owns the in-memory task collection and the next-identity
// counter. All mutations go through the Store so that identity and
// protected-field invariants hold for the whole run.
package store

import (
	"errors"
	"strings"
	"time"

	"github.com/valter-silva-au/taskmgr/pkg/models"
)

// Sentinel errors returned by store operations. The interpreter maps them
// onto the command error taxonomy.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrProtectedProperty = errors.New("property is protected")
	ErrUnknownProperty   = errors.New("unknown property")
)

// Fields holds the validated mutable fields for a new task. Identity, done
// flag and creation time are assigned by the store itself.
type Fields struct {
	Name string
	Type string
	Desc string
	Due  *models.Date
	Rep  models.Repeat
	Prio models.Priority
}

// Store is the exclusive owner of the task collection. It is not safe for
// concurrent use; the interpreter applies exactly one command at a time.
type Store struct {
	tasks  []*models.Task
	nextID int
	now    func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces the creation-time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store whose first assigned task ID is 0.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add inserts a new task built from the given fields, assigning the next
// sequential ID and the creation timestamp atomically with the insert.
// Validation has already happened by the time Add is called, so it cannot
// fail; it returns the stored task.
func (s *Store) Add(f Fields) *models.Task {
	t := &models.Task{
		ID:    s.nextID,
		Name:  f.Name,
		Type:  f.Type,
		Desc:  f.Desc,
		Due:   f.Due,
		Rep:   f.Rep,
		Prio:  f.Prio,
		Done:  false,
		Ctime: s.now(),
	}
	s.tasks = append(s.tasks, t)
	s.nextID++
	return t
}

// Get returns the task with the given ID, or ErrTaskNotFound.
func (s *Store) Get(id int) (*models.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrTaskNotFound
}

// All returns the tasks in insertion order. The slice is a copy; the task
// records are shared.
func (s *Store) All() []*models.Task {
	out := make([]*models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Modify overwrites a single property of the identified task with an
// already-validated value. id, ctime and done are protected and are never
// altered here; done changes only through Complete. The modification is
// atomic: on any error the record is unchanged.
func (s *Store) Modify(id int, property string, value any) error {
	t, err := s.Get(id)
	if err != nil {
		return err
	}

	switch property {
	case "name":
		t.Name = value.(string)
	case "type":
		t.Type = value.(string)
	case "desc":
		t.Desc = value.(string)
	case "due":
		due, _ := value.(*models.Date)
		t.Due = due
	case "rep":
		t.Rep = value.(models.Repeat)
	case "prio":
		t.Prio = value.(models.Priority)
	case "id", "ctime", "done":
		return ErrProtectedProperty
	default:
		return ErrUnknownProperty
	}
	return nil
}

// Complete marks the identified task as done. Completing an already-done
// task is a no-op success.
func (s *Store) Complete(id int) error {
	t, err := s.Get(id)
	if err != nil {
		return err
	}
	t.Done = true
	return nil
}

// DeleteByID removes the identified task.
func (s *Store) DeleteByID(id int) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// DeleteWhere removes every task whose stringified property matches val
// case-insensitively and returns how many were removed. Removing nothing is
// ErrTaskNotFound.
func (s *Store) DeleteWhere(property, val string) (int, error) {
	want := strings.ToLower(val)
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if strings.ToLower(t.Property(property)) == want {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if removed == 0 {
		return 0, ErrTaskNotFound
	}
	return removed, nil
}
