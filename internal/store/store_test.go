package store

import (
	"errors"
	"testing"
	"time"

	"github.com/valter-silva-au/taskmgr/pkg/models"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.October, 9, 13, 37, 31, 0, time.UTC)
	}
}

func newTestStore() *Store {
	return New(WithClock(fixedClock()))
}

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 5; i++ {
		task := s.Add(Fields{Name: "task", Type: "NONE", Rep: models.RepeatNone, Prio: models.PriorityMedium})
		if task.ID != i {
			t.Fatalf("task %d assigned id %d", i, task.ID)
		}
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
}

func TestStore_AddSetsDefaults(t *testing.T) {
	s := newTestStore()
	task := s.Add(Fields{Name: "A", Type: "NONE", Rep: models.RepeatNone, Prio: models.PriorityMedium})

	if task.Done {
		t.Error("new task must not be done")
	}
	if !task.Ctime.Equal(fixedClock()()) {
		t.Errorf("ctime = %v, want the clock value", task.Ctime)
	}
	if task.Due != nil {
		t.Errorf("due = %v, want unset", task.Due)
	}
}

func TestStore_Get(t *testing.T) {
	s := newTestStore()
	s.Add(Fields{Name: "A"})

	if _, err := s.Get(0); err != nil {
		t.Errorf("Get(0) error: %v", err)
	}
	if _, err := s.Get(100); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Get(100) error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_ModifyFields(t *testing.T) {
	s := newTestStore()
	s.Add(Fields{Name: "A", Type: "NONE", Rep: models.RepeatNone, Prio: models.PriorityMedium})

	if err := s.Modify(0, "name", "Renamed"); err != nil {
		t.Fatalf("modify name: %v", err)
	}
	if err := s.Modify(0, "prio", models.PriorityHigh); err != nil {
		t.Fatalf("modify prio: %v", err)
	}
	due := &models.Date{Text: "31-10-2025", Time: time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)}
	if err := s.Modify(0, "due", due); err != nil {
		t.Fatalf("modify due: %v", err)
	}

	task, _ := s.Get(0)
	if task.Name != "Renamed" || task.Prio != models.PriorityHigh || task.Due != due {
		t.Errorf("modified task = %+v", task)
	}
}

func TestStore_ModifyProtectedFields(t *testing.T) {
	s := newTestStore()
	s.Add(Fields{Name: "A"})
	before, _ := s.Get(0)
	ctime := before.Ctime

	for _, property := range []string{"id", "ctime", "done"} {
		if err := s.Modify(0, property, "x"); !errors.Is(err, ErrProtectedProperty) {
			t.Errorf("Modify(%q) error = %v, want ErrProtectedProperty", property, err)
		}
	}

	after, _ := s.Get(0)
	if after.ID != 0 || !after.Ctime.Equal(ctime) || after.Done {
		t.Errorf("protected modify changed the record: %+v", after)
	}
}

func TestStore_ModifyUnknownProperty(t *testing.T) {
	s := newTestStore()
	s.Add(Fields{Name: "A"})
	if err := s.Modify(0, "color", "red"); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("Modify(color) error = %v, want ErrUnknownProperty", err)
	}
}

func TestStore_ModifyMissingTask(t *testing.T) {
	s := newTestStore()
	if err := s.Modify(3, "name", "x"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Modify on empty store error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_Complete(t *testing.T) {
	s := newTestStore()
	s.Add(Fields{Name: "A"})

	if err := s.Complete(0); err != nil {
		t.Fatalf("complete: %v", err)
	}
	task, _ := s.Get(0)
	if !task.Done {
		t.Error("task not marked done")
	}

	// Completing an already-done task is a no-op success.
	if err := s.Complete(0); err != nil {
		t.Errorf("second complete: %v", err)
	}
	if err := s.Complete(99); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Complete(99) error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_DeleteByID(t *testing.T) {
	s := newTestStore()
	s.Add(Fields{Name: "A"})
	s.Add(Fields{Name: "B"})
	s.Add(Fields{Name: "C"})

	if err := s.DeleteByID(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if _, err := s.Get(1); !errors.Is(err, ErrTaskNotFound) {
		t.Error("task 1 still present after delete")
	}
	// Remaining ids are untouched and no id is reused.
	if task := s.Add(Fields{Name: "D"}); task.ID != 3 {
		t.Errorf("next id after delete = %d, want 3", task.ID)
	}
	if err := s.DeleteByID(1); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("second delete error = %v, want ErrTaskNotFound", err)
	}
}

func TestStore_DeleteWhere(t *testing.T) {
	s := newTestStore()
	s.Add(Fields{Name: "A", Type: "School"})
	s.Add(Fields{Name: "B", Type: "Work"})
	s.Add(Fields{Name: "C", Type: "school"})

	n, err := s.DeleteWhere("type", "SCHOOL")
	if err != nil {
		t.Fatalf("delete where: %v", err)
	}
	if n != 2 {
		t.Errorf("removed %d tasks, want 2 (case-insensitive match)", n)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if _, err := s.DeleteWhere("type", "school"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("delete with no matches error = %v, want ErrTaskNotFound", err)
	}
}
