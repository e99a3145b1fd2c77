package config

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var log = NamedLogger("config")

// AvailableLoggingLevels lists accepted --log-level values.
var AvailableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(AvailableLoggingLevels, ", ")

var namedLoggers = struct {
	sync.Mutex
	level   logrus.Level
	loggers []*logrus.Logger
}{level: logrus.InfoLevel}

// NamedLogger creates named package logger. Its level follows SetLoggingLevel.
func NamedLogger(name string) *logrus.Logger {
	namedLoggers.Lock()
	defer namedLoggers.Unlock()

	logger := &logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			TextFormatter: logrus.TextFormatter{
				FullTimestamp: true,
			},
			name: name,
		},
		Hooks: make(logrus.LevelHooks),
		Level: namedLoggers.level,
	}
	namedLoggers.loggers = append(namedLoggers.loggers, logger)
	return logger
}

// SetLoggingLevel sets level of every named logger, including ones created later.
func SetLoggingLevel(loggingLevel string) error {
	level, err := logrus.ParseLevel(loggingLevel)
	if err != nil {
		return err
	}

	namedLoggers.Lock()
	defer namedLoggers.Unlock()
	namedLoggers.level = level
	for _, logger := range namedLoggers.loggers {
		logger.SetLevel(level)
	}
	return nil
}

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range AvailableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}

// CustomTextFormatter prefixes messages with logger name and call site.
type CustomTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	_, file, no, ok := runtime.Caller(7)
	if ok {
		entry.Message = fmt.Sprintf("[%s %s:%03d] %s", f.name, path.Base(file), no, entry.Message)
	} else {
		entry.Message = fmt.Sprintf("[%s] %s", f.name, entry.Message)
	}
	return f.TextFormatter.Format(entry)
}
