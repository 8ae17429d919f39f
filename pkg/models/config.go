package models

// Config holds the global configuration loaded from .taskmgrrc.
type Config struct {
	// DefaultPriority is assigned to new tasks that omit prio.
	DefaultPriority Priority
	// DefaultRepeat is assigned to new tasks that omit rep.
	DefaultRepeat Repeat
	// EventsPath points at the JSONL command event log. Empty disables
	// event logging.
	EventsPath string
}
