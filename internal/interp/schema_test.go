package interp

import (
	"errors"
	"testing"
)

func mustTokens(t *testing.T, line string) (string, []Token) {
	t.Helper()
	name, tokens, err := Tokenize(line)
	if err != nil {
		t.Fatalf("tokenize %q: %v", line, err)
	}
	return name, tokens
}

func wantKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error = %v, want CommandError %s", err, kind)
	}
	if cmdErr.Kind != kind {
		t.Fatalf("error kind = %s, want %s", cmdErr.Kind, kind)
	}
}

func TestParseCommand_UnknownCommand(t *testing.T) {
	name, tokens := mustTokens(t, "frobnicate id=1")
	_, err := parseCommand(name, "frobnicate id=1", tokens)
	wantKind(t, err, KindInvalidArgument)
}

func TestParseCommand_UnknownKey(t *testing.T) {
	name, tokens := mustTokens(t, `add name="A" color=red`)
	_, err := parseCommand(name, "", tokens)
	wantKind(t, err, KindTooManyArguments)
}

func TestParseCommand_DuplicateKey(t *testing.T) {
	name, tokens := mustTokens(t, `add name="A" name="B"`)
	_, err := parseCommand(name, "", tokens)
	wantKind(t, err, KindTooManyArguments)
}

func TestParseCommand_MissingRequired(t *testing.T) {
	name, tokens := mustTokens(t, `add type="x"`)
	_, err := parseCommand(name, "", tokens)
	wantKind(t, err, KindMissingArguments)

	name, tokens = mustTokens(t, "mod id=0 property=name")
	_, err = parseCommand(name, "", tokens)
	wantKind(t, err, KindMissingArguments)
}

func TestParseCommand_NumericName(t *testing.T) {
	// A bare number is not a valid name, quoted or not.
	for _, line := range []string{"add name=123", `add name="123"`} {
		name, tokens := mustTokens(t, line)
		_, err := parseCommand(name, line, tokens)
		wantKind(t, err, KindInvalidArgumentType)
	}
}

func TestParseCommand_NonIntegerID(t *testing.T) {
	name, tokens := mustTokens(t, "done id=abc")
	_, err := parseCommand(name, "", tokens)
	wantKind(t, err, KindInvalidArgumentType)
}

func TestParseCommand_QuotedIntegerIDAccepted(t *testing.T) {
	name, tokens := mustTokens(t, `done id="5"`)
	cmd, err := parseCommand(name, "", tokens)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Val("id", "") != "5" {
		t.Errorf("id = %q", cmd.Val("id", ""))
	}
}

func TestParseCommand_Success(t *testing.T) {
	line := `add name="Task A" due=31-10-2025 prio=HIGH`
	name, tokens := mustTokens(t, line)
	cmd, err := parseCommand(name, line, tokens)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Name != "add" || cmd.Original != line {
		t.Errorf("cmd = %+v", cmd)
	}
	if !cmd.Has("due") || cmd.Val("prio", "") != "HIGH" {
		t.Errorf("args = %+v", cmd.Args)
	}
	if cmd.Val("rep", "NONE") != "NONE" {
		t.Errorf("fallback lookup broken")
	}
}

func TestSchemas_CoverAllCommands(t *testing.T) {
	for _, name := range []string{"help", "print", "add", "list", "mod", "done", "delete"} {
		if _, ok := schemas[name]; !ok {
			t.Errorf("no schema for %q", name)
		}
	}
}
