// Package interp implements the command interpreter pipeline: tokenization,
// schema-driven argument checking, semantic validation, store mutation, and
// the success/error reporting contract. One input line is fully processed
// before the next is read; a rejected line never touches the store.
package interp

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/valter-silva-au/taskmgr/internal/observability"
	"github.com/valter-silva-au/taskmgr/internal/store"
	"github.com/valter-silva-au/taskmgr/pkg/models"
)

// Config carries the interpreter defaults loaded from configuration.
type Config struct {
	DefaultPriority models.Priority
	DefaultRepeat   models.Repeat
}

// Options configures a new Interpreter.
type Options struct {
	Store  *store.Store
	Out    io.Writer
	Config Config
	// Events receives one event per processed command when non-nil.
	Events observability.EventLog
}

// Interpreter drives the command pipeline against a single task store.
type Interpreter struct {
	store  *store.Store
	out    io.Writer
	cfg    Config
	events observability.EventLog
	runID  string
}

// handlers is the static dispatch table over the closed command set. Extra
// output lines (listings, usage text) are emitted after the success line.
var handlers = map[string]func(*Interpreter, *Command) ([]string, error){
	"help":   (*Interpreter).cmdHelp,
	"print":  (*Interpreter).cmdPrint,
	"add":    (*Interpreter).cmdAdd,
	"list":   (*Interpreter).cmdList,
	"mod":    (*Interpreter).cmdMod,
	"done":   (*Interpreter).cmdDone,
	"delete": (*Interpreter).cmdDelete,
}

// New creates an Interpreter. Zero-value config fields fall back to the
// stock defaults (prio MEDIUM, rep NONE).
func New(opts Options) *Interpreter {
	cfg := opts.Config
	if cfg.DefaultPriority == "" {
		cfg.DefaultPriority = models.PriorityMedium
	}
	if cfg.DefaultRepeat == "" {
		cfg.DefaultRepeat = models.RepeatNone
	}
	return &Interpreter{
		store:  opts.Store,
		out:    opts.Out,
		cfg:    cfg,
		events: opts.Events,
		runID:  ulid.Make().String(),
	}
}

// RunID identifies this interpreter run in the event log.
func (it *Interpreter) RunID() string {
	return it.runID
}

// Store exposes the task store, for the browser UI and tests.
func (it *Interpreter) Store() *store.Store {
	return it.store
}

// Process runs one input line through the full pipeline and writes the
// resulting output. Blank lines and comment lines are skipped without
// output. Errors abort only the current command.
func (it *Interpreter) Process(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	if utf8.RuneCountInString(line) > MaxLineLength {
		it.reportError(line, errTooLongLine)
		return
	}
	if strings.HasPrefix(trimmed, "#") {
		return
	}

	extra, err := it.run(line)
	if err != nil {
		it.reportError(line, err)
		return
	}
	it.reportSuccess(line, extra)
}

func (it *Interpreter) run(line string) ([]string, error) {
	name, tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	cmd, err := parseCommand(name, line, tokens)
	if err != nil {
		return nil, err
	}
	return handlers[cmd.Name](it, cmd)
}

func (it *Interpreter) cmdHelp(cmd *Command) ([]string, error) {
	if len(cmd.Args) > 0 {
		return nil, errTooManyArguments
	}
	return []string{
		"help",
		"print [sort_by=<prop>] [direction=<asc|desc>]",
		`add name=<name> [type=<type>] [desc=<desc>] [due=<DD-MM-YYYY>] [rep=<NONE|DAILY|WEEKLY|MONTHLY>] [prio=<LOW|MEDIUM|HIGH>]`,
		"list property=<prop> val=<value> [sort_by=<prop>] [direction=<asc|desc>]",
		"mod id=<id> property=<prop> new_val=<value>",
		"done id=<id>",
		"delete id=<id> | delete property=<prop> val=<value>",
	}, nil
}

func (it *Interpreter) cmdPrint(cmd *Command) ([]string, error) {
	sortBy, descending, err := sortArgs(cmd)
	if err != nil {
		return nil, err
	}
	return renderTasks(it.store.All(), sortBy, descending), nil
}

func (it *Interpreter) cmdAdd(cmd *Command) ([]string, error) {
	rep, err := ParseRepeat(cmd.Val("rep", string(it.cfg.DefaultRepeat)))
	if err != nil {
		return nil, err
	}
	prio, err := ParsePriority(cmd.Val("prio", string(it.cfg.DefaultPriority)))
	if err != nil {
		return nil, err
	}
	due, err := ParseDate(cmd.Val("due", "NONE"))
	if err != nil {
		return nil, err
	}

	it.store.Add(store.Fields{
		Name: cmd.Val("name", ""),
		Type: cmd.Val("type", "NONE"),
		Desc: cmd.Val("desc", ""),
		Due:  due,
		Rep:  rep,
		Prio: prio,
	})
	return nil, nil
}

func (it *Interpreter) cmdList(cmd *Command) ([]string, error) {
	property := cmd.Val("property", "")
	if !store.ValidProperty(property) {
		return nil, errInvalidArgument
	}
	sortBy, descending, err := sortArgs(cmd)
	if err != nil {
		return nil, err
	}
	matched := it.store.Filter(property, cmd.Val("val", ""))
	return renderTasks(matched, sortBy, descending), nil
}

func (it *Interpreter) cmdMod(cmd *Command) ([]string, error) {
	id, _ := strconv.Atoi(cmd.Val("id", "")) // shape-checked by the parser
	property := cmd.Val("property", "")
	if !store.ValidProperty(property) {
		return nil, errInvalidArgument
	}
	if _, err := it.store.Get(id); err != nil {
		return nil, errTaskNotFound
	}

	newVal := cmd.Val("new_val", "")
	var value any
	switch property {
	case "due":
		due, err := ParseDate(newVal)
		if err != nil {
			return nil, err
		}
		value = due
	case "rep":
		rep, err := ParseRepeat(newVal)
		if err != nil {
			return nil, err
		}
		value = rep
	case "prio":
		prio, err := ParsePriority(newVal)
		if err != nil {
			return nil, err
		}
		value = prio
	case "done":
		// done is protected from generic modification, but a malformed
		// literal is still reported as such.
		if _, err := ParseDone(newVal); err != nil {
			return nil, err
		}
		return nil, errInvalidArgument
	case "id", "ctime":
		return nil, errInvalidArgument
	case "name":
		if isAllDigits(newVal) {
			return nil, errInvalidArgumentType
		}
		value = newVal
	default:
		value = newVal
	}

	if err := it.store.Modify(id, property, value); err != nil {
		return nil, mapStoreError(err)
	}
	return nil, nil
}

func (it *Interpreter) cmdDone(cmd *Command) ([]string, error) {
	id, _ := strconv.Atoi(cmd.Val("id", ""))
	if err := it.store.Complete(id); err != nil {
		return nil, mapStoreError(err)
	}
	return nil, nil
}

func (it *Interpreter) cmdDelete(cmd *Command) ([]string, error) {
	if cmd.Has("id") {
		if cmd.Has("property") || cmd.Has("val") {
			return nil, errTooManyArguments
		}
		id, err := strconv.Atoi(cmd.Val("id", ""))
		if err != nil {
			return nil, errInvalidArgumentType
		}
		if err := it.store.DeleteByID(id); err != nil {
			return nil, mapStoreError(err)
		}
		return nil, nil
	}

	if !cmd.Has("property") || !cmd.Has("val") {
		return nil, errMissingArguments
	}
	property := cmd.Val("property", "")
	if !store.ValidProperty(property) {
		return nil, errInvalidArgument
	}
	if _, err := it.store.DeleteWhere(property, cmd.Val("val", "")); err != nil {
		return nil, mapStoreError(err)
	}
	return nil, nil
}

// renderTasks produces the listing block: the column header, then one row
// per task followed by a blank line.
func renderTasks(tasks []*models.Task, sortBy string, descending bool) []string {
	lines := []string{"Name | Type | Desc | Due | Rep | Prio | Done | Ctime | Id"}
	store.SortTasks(tasks, sortBy, descending)
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("%s | %s | %s | %s | %s | %s | %s | %s | %d",
			t.Name, t.Type, t.Desc, t.DueText(), t.Rep, t.Prio,
			models.FormatBool(t.Done), t.CtimeText(), t.ID))
		lines = append(lines, "")
	}
	return lines
}

// mapStoreError translates store sentinels onto the command error taxonomy.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, store.ErrProtectedProperty),
		errors.Is(err, store.ErrUnknownProperty):
		return errInvalidArgument
	}
	return errInvalidArgument
}

func (it *Interpreter) reportSuccess(line string, extra []string) {
	fmt.Fprintf(it.out, "Command success: %s\n", line)
	for _, l := range extra {
		fmt.Fprintln(it.out, l)
	}
	it.logEvent(line, "")
}

func (it *Interpreter) reportError(line string, err error) {
	kind := KindInvalidArgument
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		kind = cmdErr.Kind
	}
	fmt.Fprintf(it.out, "Error %s: %s\n", kind, line)
	it.logEvent(line, kind)
}

func (it *Interpreter) logEvent(line string, kind Kind) {
	if it.events == nil {
		return
	}
	evt := observability.Event{
		Level:   "INFO",
		Type:    observability.EventCommandOK,
		Command: line,
		RunID:   it.runID,
	}
	if kind != "" {
		evt.Level = "WARN"
		evt.Type = observability.EventCommandError
		evt.Kind = string(kind)
	}
	_ = it.events.Write(evt) // Non-fatal: reporting never depends on the log.
}
