// Package internal provides the App struct that wires the taskmgr
// components together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/taskmgr/internal/cli"
	"github.com/valter-silva-au/taskmgr/internal/core"
	"github.com/valter-silva-au/taskmgr/pkg/models"
)

// App holds the service dependencies for a taskmgr process.
type App struct {
	BasePath  string
	ConfigMgr core.ConfigurationManager
	Config    *models.Config
}

// NewApp loads configuration relative to basePath and wires the CLI
// package-level variables.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.Validate(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	cli.BasePath = basePath
	cli.Cfg = cfg

	return app, nil
}

// ResolveBasePath determines the directory configuration resolves against.
// It checks the TASKMGR_HOME env var, then walks up from the working
// directory looking for a .taskmgrrc, and falls back to the working
// directory itself.
func ResolveBasePath() string {
	if home := os.Getenv("TASKMGR_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	cwd := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".taskmgrrc")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd
}
