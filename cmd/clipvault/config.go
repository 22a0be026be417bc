package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipvault/internal/logging"
	"go.klb.dev/clipvault/internal/prefs"
	"go.klb.dev/clipvault/internal/storage"
	"go.klb.dev/clipvault/internal/vault"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and CLIPVAULT_* env var prefix, then configures
// logging from the result.
//
// Precedence (lowest → highest): defaults → config file → CLIPVAULT_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("clipvault")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/clipvault/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/clipvault", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("CLIPVAULT")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	logging.Setup(
		logging.ParseFormat(v.GetString("log-format")),
		logging.ParseLevel(v.GetString("log-level")),
	)
	return nil
}

// addCommonFlags adds the flags every subcommand carries.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
	cmd.Flags().String("storage", "", "path to the state file (default: $XDG_DATA_HOME/clipvault/storage.json)")
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: warn)")
}

// openStore returns the state store selected by config.
func openStore(v *viper.Viper) *storage.Store {
	return storage.Open(v.GetString("storage"))
}

// openVault returns the clip vault on the configured store.
func openVault(v *viper.Viper) *vault.Vault {
	return vault.New(openStore(v))
}

// openPrefs returns the preference store on the configured store.
func openPrefs(v *viper.Viper) *prefs.Store {
	return prefs.New(openStore(v))
}
