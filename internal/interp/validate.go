package interp

import (
	"regexp"
	"strconv"
	"time"

	"github.com/valter-silva-au/taskmgr/internal/store"
	"github.com/valter-silva-au/taskmgr/pkg/models"
)

// dateRe accepts D-M-YYYY with one- or two-digit day and month.
var dateRe = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)

// ParseDate validates a due-date value and returns its canonical form. The
// literal NONE clears the date and returns nil. Grammar or calendar
// violations (31-02-2025 and the like) are InvalidDateFormat.
func ParseDate(s string) (*models.Date, error) {
	if s == "NONE" {
		return nil, nil
	}
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return nil, errInvalidDateFormat
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return nil, errInvalidDateFormat
	}
	return &models.Date{Text: s, Time: t}, nil
}

// ParseRepeat validates a rep value. Matching is case-sensitive.
func ParseRepeat(s string) (models.Repeat, error) {
	r := models.Repeat(s)
	if !r.Valid() {
		return "", errInvalidRepeat
	}
	return r, nil
}

// ParsePriority validates a prio value. Matching is case-sensitive.
func ParsePriority(s string) (models.Priority, error) {
	p := models.Priority(s)
	if !p.Valid() {
		return "", errInvalidPriority
	}
	return p, nil
}

// ParseDone validates a done literal. True/true and False/false are the only
// accepted spellings.
func ParseDone(s string) (bool, error) {
	switch s {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	}
	return false, errInvalidDoneStatus
}

// sortArgs validates the optional sort_by/direction pair shared by print and
// list. Defaults are name ascending. The direction token is checked first,
// matching the order violations are reported in.
func sortArgs(cmd *Command) (sortBy string, descending bool, err error) {
	direction := cmd.Val("direction", "asc")
	if direction != "asc" && direction != "desc" {
		return "", false, errInvalidArgument
	}
	sortBy = cmd.Val("sort_by", "name")
	if !store.ValidProperty(sortBy) {
		return "", false, errInvalidArgument
	}
	return sortBy, direction == "desc", nil
}
