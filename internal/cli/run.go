package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/taskmgr/internal/interp"
	"github.com/valter-silva-au/taskmgr/internal/observability"
	"github.com/valter-silva-au/taskmgr/internal/store"
)

var runVerbose bool

// maxScanTokenSize bounds scanner lines well above the 1024-char command
// limit so over-long lines still reach the interpreter and are reported as
// TooLongLine instead of failing the scan.
const maxScanTokenSize = 1 << 20

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Interpret a task command script",
	Long: `Read a script of task commands line by line, in file order, and apply
each one to a fresh in-memory task store. Use "-" to read from stdin.

Lines starting with # and blank lines are skipped. Every other line emits
exactly one "Command success" or "Error <Kind>" line on stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newRunLogger()

		in, closeIn, err := openScript(args[0])
		if err != nil {
			return err
		}
		defer closeIn()

		events, closeEvents, err := openEventLog()
		if err != nil {
			return err
		}
		defer closeEvents()

		it := newInterpreter(cmd.OutOrStdout(), events)
		logger.Debug("starting run", "script", args[0], "run_id", it.RunID())

		lines, err := feed(it, in)
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		logger.Debug("run finished", "lines", lines, "tasks", it.Store().Len())
		return nil
	},
}

// feed supplies lines to the interpreter one at a time, in input order, and
// returns how many lines were read.
func feed(it *interp.Interpreter, in io.Reader) (int, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)
	lines := 0
	for scanner.Scan() {
		it.Process(scanner.Text())
		lines++
	}
	return lines, scanner.Err()
}

func newInterpreter(out io.Writer, events observability.EventLog) *interp.Interpreter {
	opts := interp.Options{
		Store:  store.New(),
		Out:    out,
		Events: events,
	}
	if Cfg != nil {
		opts.Config = interp.Config{
			DefaultPriority: Cfg.DefaultPriority,
			DefaultRepeat:   Cfg.DefaultRepeat,
		}
	}
	return interp.New(opts)
}

func openScript(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening script: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// openEventLog opens the configured JSONL command log, or returns nil when
// event logging is disabled. Relative paths resolve against BasePath.
func openEventLog() (observability.EventLog, func(), error) {
	if Cfg == nil || Cfg.EventsPath == "" {
		return nil, func() {}, nil
	}
	path := Cfg.EventsPath
	if !filepath.IsAbs(path) && BasePath != "" {
		path = filepath.Join(BasePath, path)
	}
	events, err := observability.NewJSONLEventLog(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening event log: %w", err)
	}
	return events, func() { _ = events.Close() }, nil
}

// newRunLogger builds the stderr diagnostics logger; --verbose lowers the
// level to debug.
func newRunLogger() *log.Logger {
	level := log.WarnLevel
	if runVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "taskmgr",
	})
}

func init() {
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "log run diagnostics to stderr")
	rootCmd.AddCommand(runCmd)
}
