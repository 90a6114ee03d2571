package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logger  *log.Logger
	logFile *os.File
)

// Logging goes to a file, never to the terminal: stdout and stderr
// belong to the TUI and to command output.
func init() {
	logDir := "tmp"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "scraper"})
		return
	}

	logFileName := filepath.Join(logDir, fmt.Sprintf("scraper-%s.log", time.Now().Format("20060102-150405")))

	var err error
	logFile, err = os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "scraper"})
		return
	}

	logger = log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Prefix:          "scraper",
	})
}

// SetVerbose lowers the level so debug lines land in the log file.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// Debug writes a debug message with optional key/value pairs.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info writes an info message with optional key/value pairs.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Error writes an error message with optional key/value pairs.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// With returns a sub-logger carrying the given key/value context.
func With(keyvals ...interface{}) *log.Logger {
	return logger.With(keyvals...)
}

// Log writes a printf-style info message
func Log(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// LogError writes an error log message
func LogError(err error, format string, v ...interface{}) {
	logger.Error(fmt.Sprintf(format, v...), "error", err)
}

// CloseLog closes the log file
func CloseLog() {
	if logFile != nil {
		logFile.Close()
	}
}
