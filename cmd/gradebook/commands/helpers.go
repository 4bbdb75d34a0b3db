// Package commands implements the gradebook subcommands.
package commands

import (
	"fmt"

	"github.com/yarthi-tools/gradebook/internal/config"
	"github.com/yarthi-tools/gradebook/internal/store"
)

// Shared flag names and usages.
const (
	flagConfig      = "config"
	flagConfigShort = "c"
	usageConfig     = "path to config file (default: .gradebook.yaml in CWD or $HOME)"

	flagOutput      = "output"
	flagOutputShort = "o"
)

// openStore loads configuration and opens the record store it points at.
// Opening never fails on a bad data file; the store absorbs load errors.
func openStore(configPath string) (*config.Config, *store.Store, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, store.Open(cfg.DataFile), nil
}
