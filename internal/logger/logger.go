// Package logger configures the shared application logger: human-readable
// lines written to both the console and a rotating log file.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. It stays nil until Init runs; the
// package-level helpers tolerate that, so library code can log without
// caring whether the CLI wired logging up.
var Logger *log.Logger

// Config holds logger configuration.
type Config struct {
	Debug bool   // raise the level from info to debug
	File  string // log file path
}

// Init builds the global logger. Every run logs to the console and to the
// file: the file is the durable record, the console mirrors it.
func Init(cfg Config) {
	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     28, // days
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(io.MultiWriter(os.Stderr, fileWriter), log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "daysheet",
	})
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
