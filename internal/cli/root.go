// Package cli implements the taskmgr command tree. Service dependencies are
// wired into package-level variables by internal.NewApp before Execute runs.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/taskmgr/pkg/models"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// Cfg is the loaded configuration. Set during application wiring.
var Cfg *models.Config

// BasePath is the directory configuration and event logs resolve against.
// Set during application wiring.
var BasePath string

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "taskmgr",
	Short: "taskmgr - command-driven in-memory task manager",
	Long: `taskmgr interprets line-oriented task commands from a script file and
maintains an in-memory collection of tasks for the duration of the run.

Supported commands inside a script: help, print, add, list, mod, done,
delete. Each input line produces exactly one success or error line.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskmgr %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
