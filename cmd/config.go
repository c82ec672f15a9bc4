package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/etnz/expense"
)

// Config holds the content of the xps configuration file.
type Config struct {
	// Ledger is the ledger file to use when neither the -f flag nor the
	// EXPENSES_FILE variable is set.
	Ledger string `toml:"ledger,omitempty"`
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "xps")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "xps")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadConfig reads the config file, returning defaults if it doesn't exist.
func LoadConfig() (Config, error) {
	var cfg Config

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ledgerPath resolves the ledger file location: the -f flag wins, then the
// EXPENSES_FILE variable, then the `ledger` key of the config file, then
// expenses.txt in the current directory.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if path := os.Getenv("EXPENSES_FILE"); path != "" {
		return path
	}
	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("warning: ignoring config file: %v", err)
	}
	if cfg.Ledger != "" {
		return cfg.Ledger
	}
	return expense.DefaultFilename
}
