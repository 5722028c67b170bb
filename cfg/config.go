package cfg

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// LoggingConfiguration controls logging behavior
type LoggingConfiguration struct {
	Verbose bool   `toml:"verbose"`
	Format  string `toml:"format"` // "console" or "json"
}

// PrometheusConfiguration for metrics
type PrometheusConfiguration struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"`
	Port    int    `toml:"port"`
}

// ParserConfiguration controls the statement parser front-end
type ParserConfiguration struct {
	CacheSize         int  `toml:"cache_size"`          // LRU entries for the classification cache, 0 disables it
	Validate          bool `toml:"validate"`            // cross-check statements against in-memory SQLite
	ValidatorPoolSize int  `toml:"validator_pool_size"` // SQLite connections held by the validator
}

// Configuration is the main configuration structure
type Configuration struct {
	Parser     ParserConfiguration     `toml:"parser"`
	Logging    LoggingConfiguration    `toml:"logging"`
	Prometheus PrometheusConfiguration `toml:"prometheus"`
}

// Command line flags
var (
	ConfigPathFlag = flag.String("config", "routeguard.toml", "Path to configuration file")
	InputFlag      = flag.String("input", "-", "SQL input file, - for stdin")
	VerboseFlag    = flag.Bool("verbose", false, "Enable debug logging (overrides config)")
	ValidateFlag   = flag.Bool("validate", false, "Cross-check statements against in-memory SQLite (overrides config)")
)

// Default configuration
var Config = &Configuration{
	Parser: ParserConfiguration{
		CacheSize:         1024,
		Validate:          false,
		ValidatorPoolSize: 4,
	},

	Logging: LoggingConfiguration{
		Verbose: false,
		Format:  "console",
	},

	Prometheus: PrometheusConfiguration{
		Enabled: false,
		Address: "0.0.0.0",
		Port:    9090,
	},
}

// Load loads configuration from file and applies CLI overrides
func Load(configPath string) error {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			log.Info().Str("path", configPath).Msg("Loading configuration")
			if _, err := toml.DecodeFile(configPath, Config); err != nil {
				return fmt.Errorf("failed to decode config: %w", err)
			}
		} else {
			log.Debug().Str("path", configPath).Msg("Config file not found, using defaults")
		}
	}

	// Apply CLI overrides
	if *VerboseFlag {
		Config.Logging.Verbose = true
	}
	if *ValidateFlag {
		Config.Parser.Validate = true
	}

	return nil
}

// Validate checks the loaded configuration for nonsensical values
func Validate() error {
	if Config.Parser.CacheSize < 0 {
		return fmt.Errorf("parser.cache_size must be >= 0, got %d", Config.Parser.CacheSize)
	}
	if Config.Parser.ValidatorPoolSize <= 0 {
		return fmt.Errorf("parser.validator_pool_size must be > 0, got %d", Config.Parser.ValidatorPoolSize)
	}
	if Config.Logging.Format != "console" && Config.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json, got %q", Config.Logging.Format)
	}
	if Config.Prometheus.Enabled && (Config.Prometheus.Port <= 0 || Config.Prometheus.Port > 65535) {
		return fmt.Errorf("prometheus.port must be a valid port, got %d", Config.Prometheus.Port)
	}
	return nil
}
