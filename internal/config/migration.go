package config

import (
	"fmt"
	"net/url"
)

// MigrationConfig points at the remote server that adopts exported ledgers.
// When this service is itself the adoption target, the section configures the
// outbound client used by the one-shot migration commands.
type MigrationConfig struct {
	BaseUrl          string `mapstructure:"base-url"`
	LedgerEndpoint   string `mapstructure:"ledger-endpoint"`
	ActivityEndpoint string `mapstructure:"activity-endpoint"`
	Timeout          int    `mapstructure:"timeout"`
}

func (cfg *MigrationConfig) Validate() error {
	if cfg.BaseUrl == "" {
		return fmt.Errorf("missing migration base url")
	}

	if _, err := url.ParseRequestURI(cfg.BaseUrl); err != nil {
		return fmt.Errorf("invalid migration base url: %w", err)
	}

	if cfg.LedgerEndpoint == "" {
		return fmt.Errorf("missing migration ledger endpoint")
	}

	if cfg.ActivityEndpoint == "" {
		return fmt.Errorf("missing migration activity endpoint")
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("migration timeout must be a positive integer")
	}

	return nil
}
