package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"
)

type checkFunc func(conf *Config) error

var defaultCheckFuncs = []checkFunc{
	checkLoggingLevel,
	checkOutputDir,
	checkRunTimeout,
}

func checkConfig(conf *Config, checkFuncs []checkFunc) error {
	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

func checkLoggingLevel(conf *Config) error {
	conf.LoggingLevel = strings.ToLower(conf.LoggingLevel)
	if !validateLoggingLevel(conf.LoggingLevel) {
		return fmt.Errorf("invalid logging level: %q, expected one of: %s",
			conf.LoggingLevel, availableLoggingLevelsString)
	}
	return nil
}

func checkOutputDir(conf *Config) error {
	if conf.OutputDir == "" {
		return fmt.Errorf("output dir cannot be empty")
	}
	info, err := os.Stat(conf.OutputDir)
	if os.IsNotExist(err) {
		return os.MkdirAll(conf.OutputDir, 0755)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("output dir %s is not a directory", conf.OutputDir)
	}
	return nil
}

func checkRunTimeout(conf *Config) error {
	if conf.RunTimeout <= 0 {
		return fmt.Errorf("run timeout must be positive, got %s", conf.RunTimeout)
	}
	return nil
}

var addressRegexp = regexp.MustCompile(`^.*?:\d+$`)

func checkAddress(conf *Config) error {
	if !addressRegexp.MatchString(conf.Address) {
		return fmt.Errorf("invalid address: %q", conf.Address)
	}
	return nil
}

func checkPort(conf *Config) error {
	_, portString, err := net.SplitHostPort(conf.Address)
	if err != nil {
		return err
	}
	port, err := strconv.ParseInt(portString, 10, 64)
	if err != nil {
		return err
	}
	if port < 1000 || port > 65535 {
		return fmt.Errorf("invalid port number %d", port)
	}

	ln, connectErr := net.Listen("tcp", conf.Address)
	if connectErr != nil {
		return connectErr
	}
	closeErr := ln.Close()
	return closeErr
}
