package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "daysheet.log")

	Init(Config{File: logFile})
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Info("test info message", "path", "somewhere")
	Error("test error message")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Expected log file to exist after logging: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "test info message") {
		t.Errorf("Expected info message in log file, got: %s", content)
	}
	if !strings.Contains(content, "test error message") {
		t.Errorf("Expected error message in log file, got: %s", content)
	}
}

func TestInit_DebugLevelGatesDebugMessages(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "daysheet.log")

	Init(Config{File: logFile})
	Debug("hidden debug message")
	Info("visible info message")

	data, _ := os.ReadFile(logFile)
	if strings.Contains(string(data), "hidden debug message") {
		t.Error("Expected debug message suppressed at the default level")
	}

	Init(Config{Debug: true, File: logFile})
	Debug("shown debug message")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "shown debug message") {
		t.Error("Expected debug message written in debug mode")
	}
}

func TestHelpersTolerateMissingInit(t *testing.T) {
	Logger = nil

	// None of these may panic before Init has run.
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
