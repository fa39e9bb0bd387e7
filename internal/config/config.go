package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds runtime configuration read from the environment
type Config struct {
	DBPath string // PAGESTREAK_DB overrides the default database location
	Debug  bool   // PAGESTREAK_DEBUG=true enables verbose logging
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		DBPath: os.Getenv("PAGESTREAK_DB"),
		Debug:  os.Getenv("PAGESTREAK_DEBUG") == "true",
	}
}

// Logger builds the application logger. Quiet by default: a CLI should
// not interleave log lines with its output unless asked to.
func (c *Config) Logger() *zap.Logger {
	if !c.Debug {
		return zap.NewNop()
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
