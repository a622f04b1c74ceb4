package config

import (
	"fmt"
	"time"
)

const defaultMaxAge = 30 * 24 * time.Hour

// CleanupConfig controls the age-based pruning of terminal withdrawal
// requests. Only executed and rejected records are ever pruned.
type CleanupConfig struct {
	// Interval between cleanup passes, in seconds.
	Interval int `mapstructure:"interval"`
	// MaxAge of a terminal record before it becomes eligible for pruning.
	MaxAge time.Duration `mapstructure:"max-age"`
}

func (cfg *CleanupConfig) Validate() error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("cleanup interval must be a positive integer")
	}

	if cfg.MaxAge < 0 {
		return fmt.Errorf("cleanup max-age cannot be negative")
	}

	if cfg.MaxAge == 0 {
		cfg.MaxAge = defaultMaxAge
	}

	return nil
}
