package observability

import (
	"path/filepath"
	"testing"
	"time"
)

func TestEventLog_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	defer log.Close()

	now := time.Now().UTC().Truncate(time.Millisecond)
	events := []Event{
		{
			Time:    now,
			Level:   "INFO",
			Type:    EventCommandOK,
			Command: `add name="Task A"`,
			RunID:   "01TESTRUN",
		},
		{
			Time:    now.Add(time.Second),
			Level:   "WARN",
			Type:    EventCommandError,
			Command: "done id=100",
			Kind:    "TaskNotFound",
			RunID:   "01TESTRUN",
		},
	}
	for _, e := range events {
		if err := log.Write(e); err != nil {
			t.Fatalf("writing event: %v", err)
		}
	}

	result, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading events: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 events, got %d", len(result))
	}
	if result[0].Command != `add name="Task A"` {
		t.Errorf("command = %q", result[0].Command)
	}
	if result[1].Kind != "TaskNotFound" || result[1].Level != "WARN" {
		t.Errorf("error event = %+v", result[1])
	}
}

func TestEventLog_FilterByTypeAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	defer log.Close()

	_ = log.Write(Event{Type: EventCommandOK, Command: "a", RunID: "run1"})
	_ = log.Write(Event{Type: EventCommandError, Command: "b", Kind: "InvalidArgument", RunID: "run1"})
	_ = log.Write(Event{Type: EventCommandOK, Command: "c", RunID: "run2"})

	errorsOnly, err := log.Read(EventFilter{Type: EventCommandError})
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if len(errorsOnly) != 1 || errorsOnly[0].Command != "b" {
		t.Errorf("type filter returned %+v", errorsOnly)
	}

	run1, err := log.Read(EventFilter{RunID: "run1"})
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if len(run1) != 2 {
		t.Errorf("run filter returned %d events, want 2", len(run1))
	}
}

func TestEventLog_WriteStampsZeroTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("creating event log: %v", err)
	}
	defer log.Close()

	if err := log.Write(Event{Type: EventCommandOK, Command: "a"}); err != nil {
		t.Fatalf("writing: %v", err)
	}
	result, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if len(result) != 1 || result[0].Time.IsZero() {
		t.Errorf("zero time not stamped: %+v", result)
	}
}

func TestEventLog_ReadMissingFile(t *testing.T) {
	log := &jsonlEventLog{path: filepath.Join(t.TempDir(), "absent.jsonl")}
	events, err := log.Read(EventFilter{})
	if err != nil || events != nil {
		t.Errorf("Read on missing file = %v, %v", events, err)
	}
}
