package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName = "config.yml"
)

var (
	cfgPath               string
	replayFlag            bool
	migrateLedgerFlag     bool
	migrateActivityVault  string
	migrateGuardianToken  string
	rootCmd               = &cobra.Command{
		Use: "start-server",
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := getDefaultConfigFile(homePath, defaultConfigFileName)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))
	rootCmd.PersistentFlags().BoolVar(&replayFlag, "replay", false, "re-enqueue unprocessable messages and exit")
	rootCmd.PersistentFlags().BoolVar(&migrateLedgerFlag, "migrate-ledger", false, "export the withdrawal-request ledger to the configured remote server and exit")
	rootCmd.PersistentFlags().StringVar(&migrateActivityVault, "migrate-activity", "", "migrate cached chain activity for the given vault address and exit")
	rootCmd.PersistentFlags().StringVar(&migrateGuardianToken, "guardian-token", "", "guardian token address to include in the activity migration")
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}

func GetReplayFlag() bool {
	return replayFlag
}

func GetMigrateLedgerFlag() bool {
	return migrateLedgerFlag
}

func GetMigrateActivityVault() string {
	return migrateActivityVault
}

func GetMigrateGuardianToken() string {
	return migrateGuardianToken
}
