// Package config provides configuration shared by the radialbuild commands.
package config

import (
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// Config represent command configuration.
type Config struct {
	// LoggingLevel is one of AvailableLoggingLevels.
	LoggingLevel string

	// OutputDir is the directory generated files are written to.
	OutputDir string

	// Address is host:port the http api listens on.
	Address string

	// OpenMCPath is the transport engine executable used by the run command.
	OpenMCPath string

	// RunTimeout bounds a single transport engine run.
	RunTimeout time.Duration
}

// Default returns configuration used when neither environment nor flags say otherwise.
func Default() *Config {
	return &Config{
		LoggingLevel: "info",
		OutputDir:    ".",
		Address:      "localhost:3002",
		OpenMCPath:   "openmc",
		RunTimeout:   1000 * time.Second,
	}
}

// Setup expands paths, checks the config and applies the logging level.
func Setup(conf *Config) error {
	outputDir, err := homedir.Expand(conf.OutputDir)
	if err != nil {
		return errors.Wrap(err, "output dir")
	}
	conf.OutputDir = outputDir

	if err := checkConfig(conf, defaultCheckFuncs); err != nil {
		return err
	}
	return SetLoggingLevel(conf.LoggingLevel)
}

// SetupServe is Setup with additional checks for the http api.
func SetupServe(conf *Config) error {
	if err := Setup(conf); err != nil {
		return err
	}
	return checkConfig(conf, []checkFunc{checkAddress, checkPort})
}
