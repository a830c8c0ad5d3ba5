package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/payledger-go/internal"
	"github.com/ZanzyTHEbar/payledger-go/internal/cli"
	"github.com/ZanzyTHEbar/payledger-go/internal/cli/cli_cmds"
)

func main() {
	cfg, log := internal.Init()

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Error running payledger")
	}
}

func run(cfg *internal.Config, logger zerolog.Logger) error {
	// Setup the Root Command with access to services
	rootParams := &cli.CmdParams{
		Config:  cfg,
		Logger:  logger,
		Palette: nil,
		Use:     "payledger",
		Alias:   "plg",
		Short:   "Payledger transaction engine",
		Long:    "Payledger - apply a transaction log and report final account balances",
	}

	// Generate command palette
	palette := cli_cmds.GeneratePalette(rootParams)
	rootParams.Palette = palette

	// Create root command
	rootCmd := cli.NewRootCMD(rootParams)

	// Execute root command
	if err := rootCmd.Root.Execute(); err != nil {
		return fmt.Errorf("error executing root command: %v", err)
	}

	return nil
}
