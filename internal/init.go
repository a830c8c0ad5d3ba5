package internal

import (
	"log"

	"github.com/rs/zerolog"
)

// Init loads configuration and wires the global logger. It is called once
// from main before any command runs.
func Init() (*Config, zerolog.Logger) {
	// Load configuration with empty config file path - will be handled by viper/cobra
	cfg, err := LoadConfig("")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	InitGlobalLogger(cfg.Log.Level, cfg.Log.Pretty)

	return cfg, GetLogger()
}
