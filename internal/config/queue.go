package config

import (
	"fmt"
)

type QueueConfig struct {
	Url                    string `mapstructure:"url"`
	User                   string `mapstructure:"user"`
	Password               string `mapstructure:"password"`
	DepositQueueName       string `mapstructure:"deposit-queue-name"`
	WithdrawalQueueName    string `mapstructure:"withdrawal-queue-name"`
	GuardianQueueName      string `mapstructure:"guardian-queue-name"`
	QueueProcessingTimeout int    `mapstructure:"queue-processing-timeout"`
	HealthCheckInterval    int    `mapstructure:"health-check-interval"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	if cfg.User == "" {
		return fmt.Errorf("missing queue user")
	}

	if cfg.Password == "" {
		return fmt.Errorf("missing queue password")
	}

	if cfg.DepositQueueName == "" || cfg.WithdrawalQueueName == "" || cfg.GuardianQueueName == "" {
		return fmt.Errorf("missing queue name")
	}

	if cfg.QueueProcessingTimeout <= 0 {
		return fmt.Errorf("queue processing timeout must be a positive integer")
	}

	if cfg.HealthCheckInterval <= 0 {
		return fmt.Errorf("health check interval must be a positive integer")
	}

	return nil
}
