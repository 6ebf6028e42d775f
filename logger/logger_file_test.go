package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func discardOutput() func() {
	oldStdout, oldStderr := outStdout, outStderr
	outStdout = io.Discard
	outStderr = io.Discard
	return func() {
		outStdout = oldStdout
		outStderr = oldStderr
	}
}

// isolateDefault installs a throwaway default logger so Init can close it,
// and restores the original default when the test ends.
func isolateDefault(t *testing.T) {
	t.Helper()
	original := SetDefault(New(WithWriter(io.Discard)))
	t.Cleanup(func() {
		if replaced := SetDefault(original); replaced != original {
			_ = replaced.Close()
		}
	})
}

func TestFileLogging_ColorizedStripsAnsi(t *testing.T) {
	defer discardOutput()()
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var console bytes.Buffer
	l := New(
		WithWriter(&console),
		WithFormatter(levelMessage),
		WithTheme(Classic(AllComponents)),
		WithFile(logPath),
	)

	l.Infof("test info message")
	l.Warnln("test", "warning")
	l.ErrorJoin(", ", "test error", "key=value")
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	log := string(content)

	want := "INFO test info message\nWARN test warning\nERROR test error, key=value\n"
	if log != want {
		t.Errorf("log file = %q, want %q", log, want)
	}

	// Verify no ANSI color codes in file
	if strings.Contains(log, "\033[") {
		t.Errorf("log file should not contain ANSI color codes, got: %q", log)
	}
	// The console keeps its colors.
	if !strings.Contains(console.String(), "\033[") {
		t.Errorf("console output should contain ANSI color codes, got: %q", console.String())
	}
}

func TestFileLogging_Timestamps(t *testing.T) {
	defer discardOutput()()
	logPath := filepath.Join(t.TempDir(), "ts.log")

	l := New(WithWriter(io.Discard), WithFile(logPath))
	l.Info("timestamped message")
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	// Basic renders "[2006-01-02 15:04:05.000]  INFO | file.go:N > message".
	pattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\]  INFO \| logger_file_test\.go:\d+ > timestamped message\n$`)
	if !pattern.Match(content) {
		t.Errorf("log line does not match the Basic layout, got: %q", string(content))
	}
}

func TestFileLogging_Append(t *testing.T) {
	defer discardOutput()()
	logPath := filepath.Join(t.TempDir(), "append.log")

	for _, msg := range []string{"first", "second"} {
		l := New(WithWriter(io.Discard), WithFormatter(levelMessage), WithFile(logPath))
		l.Info(msg)
		if err := l.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if got := string(content); got != "INFO first\nINFO second\n" {
		t.Errorf("log file should contain both runs, got: %q", got)
	}
}

func TestFileLogging_InvalidPath(t *testing.T) {
	var stderrBuf bytes.Buffer
	oldStderr := outStderr
	outStderr = &stderrBuf
	defer func() { outStderr = oldStderr }()

	// An unopenable file is reported and the logger keeps writing to its writer.
	invalidPath := "/nonexistent/directory/test.log"
	var console bytes.Buffer
	l := New(WithWriter(&console), WithFormatter(levelMessage), WithSyslogPrefix(false), WithFile(invalidPath))
	l.Info("test message")
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if !strings.Contains(stderrBuf.String(), "failed to open log file "+invalidPath) {
		t.Errorf("expected open failure on stderr, got: %q", stderrBuf.String())
	}
	if console.String() != "INFO test message\n" {
		t.Errorf("logger should still write to its writer, got: %q", console.String())
	}
	if l.sink.file != nil {
		t.Errorf("file should be nil when path is invalid, got: %v", l.sink.file)
	}
}

func TestFileLogging_AllLevels(t *testing.T) {
	defer discardOutput()()
	stubExit(t)
	logPath := filepath.Join(t.TempDir(), "levels.log")

	l := New(WithWriter(io.Discard), WithFormatter(levelMessage), WithFile(logPath))
	l.Trace("t")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	l.Fatal("f")
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	want := "TRACE t\nDEBUG d\nINFO i\nWARN w\nERROR e\nFATAL f\n"
	if got := string(content); got != want {
		t.Errorf("log file = %q, want %q", got, want)
	}
}

func TestInit_FilePathFromConfig(t *testing.T) {
	defer discardOutput()()
	isolateDefault(t)
	logPath := filepath.Join(t.TempDir(), "init.log")

	if err := Init(Config{Level: "warn", Formatter: "minimal", FilePath: logPath}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Info("dropped")
	Warn("kept")
	if err := Close(); err != nil {
		t.Fatalf("Close() should not return error, got: %v", err)
	}
	// Second close should be safe (no-op)
	if err := Close(); err != nil {
		t.Fatalf("second Close() should not return error, got: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	want := regexp.MustCompile(`^ WARN \| logger_file_test\.go:\d+ > kept\n$`)
	if !want.Match(content) {
		t.Errorf("unexpected log file content: %q", string(content))
	}
}

func TestInit_InvalidFilePath(t *testing.T) {
	defer discardOutput()()
	isolateDefault(t)
	before := Default()

	err := Init(Config{FilePath: "/nonexistent/directory/test.log"})
	if err == nil {
		t.Fatal("expected an error for an unopenable log file")
	}
	if Default() != before {
		t.Fatal("default logger should be unchanged after a failed Init")
	}
}
