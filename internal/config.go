package internal

import (
	"strings"

	"github.com/spf13/viper"
)

// Config represents the payledger configuration
type Config struct {
	// Output configuration
	Output struct {
		Precision int32 `mapstructure:"precision"` // Decimal places in rendered amounts
	} `mapstructure:"output"`

	// Engine configuration
	Engine struct {
		Shards int `mapstructure:"shards"` // Worker shards; 0 means single-threaded
	} `mapstructure:"engine"`

	// Log configuration
	Log struct {
		Level  string `mapstructure:"level"`  // zerolog level name, e.g. "info"
		Pretty bool   `mapstructure:"pretty"` // Human-readable console output
	} `mapstructure:"log"`
}

// LoadConfig loads the configuration from various sources
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaultConfig(v)

	// Read configuration from file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Look for config in the current directory and in /etc/payledger/
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/payledger/")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Override with environment variables prefixed with PAYLEDGER_
	v.SetEnvPrefix("PAYLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Parse the configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(v *viper.Viper) {
	// Amounts are carried at four decimal places internally
	v.SetDefault("output.precision", 4)

	// Single-threaded engine by default; record order is semantically
	// significant and sharding is opt-in
	v.SetDefault("engine.shards", 0)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}
