// Package core contains the configuration layer for taskmgr.
package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/valter-silva-au/taskmgr/pkg/models"
)

// ConfigurationManager defines the interface for loading and validating the
// .taskmgrrc configuration file.
type ConfigurationManager interface {
	Load() (*models.Config, error)
	Validate(cfg *models.Config) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .taskmgrrc resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads the
// configuration file from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultConfig returns a Config populated with the stock defaults.
func defaultConfig() *models.Config {
	return &models.Config{
		DefaultPriority: models.PriorityMedium,
		DefaultRepeat:   models.RepeatNone,
		EventsPath:      "",
	}
}

// Load reads .taskmgrrc from the base path. If the file does not exist,
// the defaults are returned.
func (cm *viperConfigManager) Load() (*models.Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName(".taskmgrrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("defaults.priority", string(cfg.DefaultPriority))
	v.SetDefault("defaults.repeat", string(cfg.DefaultRepeat))
	v.SetDefault("events.path", cfg.EventsPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .taskmgrrc: %w", err)
	}

	cfg.DefaultPriority = models.Priority(v.GetString("defaults.priority"))
	cfg.DefaultRepeat = models.Repeat(v.GetString("defaults.repeat"))
	cfg.EventsPath = v.GetString("events.path")

	return cfg, nil
}

// Validate checks the configuration for invalid values and returns an error
// naming every problem found.
func (cm *viperConfigManager) Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if !cfg.DefaultPriority.Valid() {
		errs = append(errs, fmt.Sprintf(
			"defaults.priority %q is invalid, must be one of: LOW, MEDIUM, HIGH",
			cfg.DefaultPriority,
		))
	}

	if !cfg.DefaultRepeat.Valid() {
		errs = append(errs, fmt.Sprintf(
			"defaults.repeat %q is invalid, must be one of: NONE, DAILY, WEEKLY, MONTHLY",
			cfg.DefaultRepeat,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
