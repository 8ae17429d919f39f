package models

import (
	"fmt"
	"strconv"
	"time"
)

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// priorityRank maps priorities to their domain order. Sorting by prio uses
// this order (LOW < MEDIUM < HIGH), never the lexicographic one.
var priorityRank = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
}

// Valid reports whether p is a member of the closed priority set.
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// Rank returns the domain order of p. Unknown priorities rank lowest.
func (p Priority) Rank() int {
	return priorityRank[p]
}

// Repeat represents the recurrence schedule of a task.
type Repeat string

const (
	RepeatNone    Repeat = "NONE"
	RepeatDaily   Repeat = "DAILY"
	RepeatWeekly  Repeat = "WEEKLY"
	RepeatMonthly Repeat = "MONTHLY"
)

var validRepeats = map[Repeat]bool{
	RepeatNone:    true,
	RepeatDaily:   true,
	RepeatWeekly:  true,
	RepeatMonthly: true,
}

// Valid reports whether r is a member of the closed repeat set.
func (r Repeat) Valid() bool {
	return validRepeats[r]
}

// Date is the canonical comparable form of a due date. Text keeps the exact
// input spelling (day and month may be one or two digits) for display and
// filtering; Time carries the calendar value used for ordering.
type Date struct {
	Text string
	Time time.Time
}

// Task represents a single task record owned by the store. ID and Ctime are
// assigned once at creation; Done changes only through the completion
// operation.
type Task struct {
	ID    int
	Name  string
	Type  string
	Desc  string
	Due   *Date // nil when no due date is set
	Rep   Repeat
	Prio  Priority
	Done  bool
	Ctime time.Time
}

// DueText returns the due date as entered, or "NONE" when unset.
func (t *Task) DueText() string {
	if t.Due == nil {
		return "NONE"
	}
	return t.Due.Text
}

// CtimeText renders the creation timestamp as D-M-YYYY HH:MM:SS, without
// zero-padding the day or month.
func (t *Task) CtimeText() string {
	return fmt.Sprintf("%d-%d-%d %02d:%02d:%02d",
		t.Ctime.Day(), int(t.Ctime.Month()), t.Ctime.Year(),
		t.Ctime.Hour(), t.Ctime.Minute(), t.Ctime.Second())
}

// Property returns the stringified value of the named property, in the form
// used for listing output and case-insensitive filter matching.
func (t *Task) Property(name string) string {
	switch name {
	case "name":
		return t.Name
	case "type":
		return t.Type
	case "desc":
		return t.Desc
	case "due":
		return t.DueText()
	case "rep":
		return string(t.Rep)
	case "prio":
		return string(t.Prio)
	case "done":
		return FormatBool(t.Done)
	case "ctime":
		return t.CtimeText()
	case "id":
		return strconv.Itoa(t.ID)
	}
	return ""
}

// FormatBool renders a done flag as the True/False literals the command
// language uses.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
