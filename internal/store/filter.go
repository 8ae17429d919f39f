package store

import (
	"sort"
	"strings"
	"time"

	"github.com/valter-silva-au/taskmgr/pkg/models"
)

// Properties is the closed set of task property names accepted by list,
// mod, delete and the sort engine, in display-column order.
var Properties = []string{"name", "type", "desc", "due", "rep", "prio", "done", "ctime", "id"}

// ValidProperty reports whether name is a known task property.
func ValidProperty(name string) bool {
	for _, p := range Properties {
		if p == name {
			return true
		}
	}
	return false
}

// Filter returns the tasks whose stringified property equals val under
// case-insensitive comparison, in insertion order.
func (s *Store) Filter(property, val string) []*models.Task {
	want := strings.ToLower(val)
	var out []*models.Task
	for _, t := range s.tasks {
		if strings.ToLower(t.Property(property)) == want {
			out = append(out, t)
		}
	}
	return out
}

// SortTasks orders tasks in place by the given property. The sort is stable:
// equal keys keep their prior relative order, in both directions. Descending
// order reverses the comparator only.
func SortTasks(tasks []*models.Task, sortBy string, descending bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if descending {
			a, b = b, a
		}
		return compareTasks(a, b, sortBy) < 0
	})
}

// compareTasks compares two tasks on the given property. name, type and desc
// compare lowercase lexicographically; due and ctime chronologically, with
// unset due dates after all real ones; prio uses the LOW < MEDIUM < HIGH
// domain order; done orders False before True; id is numeric.
func compareTasks(a, b *models.Task, sortBy string) int {
	switch sortBy {
	case "name":
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case "type":
		return strings.Compare(strings.ToLower(a.Type), strings.ToLower(b.Type))
	case "desc":
		return strings.Compare(strings.ToLower(a.Desc), strings.ToLower(b.Desc))
	case "due":
		return compareDue(a.Due, b.Due)
	case "rep":
		return strings.Compare(string(a.Rep), string(b.Rep))
	case "prio":
		return a.Prio.Rank() - b.Prio.Rank()
	case "done":
		return boolRank(a.Done) - boolRank(b.Done)
	case "ctime":
		// ctime displays at second resolution; the sort key matches it so
		// tasks created within the same second tie.
		return compareTimes(a.Ctime.Truncate(time.Second), b.Ctime.Truncate(time.Second))
	case "id":
		return a.ID - b.ID
	}
	return 0
}

func compareDue(a, b *models.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return compareTimes(a.Time, b.Time)
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
