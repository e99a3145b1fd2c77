package config

import (
	"os"
	"strings"
	"time"
)

const envPrefix = "RADIALBUILD_"

// FromEnv overrides conf fields with RADIALBUILD_* environment variables.
// Unparsable values are logged and ignored.
func FromEnv(conf *Config) *Config {
	if level := os.Getenv(envPrefix + "LOG_LEVEL"); level != "" {
		conf.LoggingLevel = strings.ToLower(level)
	}
	if dir := os.Getenv(envPrefix + "OUTPUT_DIR"); dir != "" {
		conf.OutputDir = dir
	}
	if address := os.Getenv(envPrefix + "ADDRESS"); address != "" {
		conf.Address = address
	}
	if openmc := os.Getenv(envPrefix + "OPENMC"); openmc != "" {
		conf.OpenMCPath = openmc
	}
	if timeout := os.Getenv(envPrefix + "RUN_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			log.Warnf("[config] %sRUN_TIMEOUT is not a duration: %s", envPrefix, err.Error())
		} else {
			conf.RunTimeout = d
		}
	}
	return conf
}
