package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mattyatea/esa-client/pkg/esa"
)

// newAPIClient builds an esa client from the loaded configuration and
// the global flags.
func newAPIClient() (*esa.Client, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, fmt.Errorf("no configuration loaded")
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	return esa.NewClient(cfg.AccessToken,
		esa.WithDefaultTeam(cfg.DefaultTeam),
		esa.WithLogger(logger),
	)
}

// effectiveTeam resolves the team a command acts on, for display purposes.
func effectiveTeam() string {
	if teamFlag != "" {
		return teamFlag
	}
	if cfg := GetConfig(); cfg != nil {
		return cfg.DefaultTeam
	}
	return ""
}
