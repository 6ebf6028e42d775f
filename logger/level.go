package logger

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Levels define log severity. Lower values are less severe, so the usual
// integer comparisons order them: TraceLevel < DebugLevel < ... < FatalLevel.
type Level int

const (
	// TraceLevel enables trace logging.
	TraceLevel Level = iota
	// DebugLevel enables debug logging.
	DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// FatalLevel enables fatal logging (exits after logging).
	FatalLevel
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("logger: unknown level")

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// maxLevelWidth is the length of the longest level name.
var maxLevelWidth = func() int {
	n := 0
	for _, name := range levelNames {
		n = max(n, len(name))
	}
	return n
}()

// AllLevels returns all supported levels in ascending order.
func AllLevels() []Level {
	return []Level{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		FatalLevel,
	}
}

// String returns the display name of the level.
func (l Level) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return "LEVEL(" + strconv.Itoa(int(l)) + ")"
}

func (l Level) valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL", "CRIT", "CRITICAL":
		return FatalLevel, nil
	}
	return 0, errors.Wrapf(ErrUnknownLevel, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, errors.Wrapf(ErrUnknownLevel, "%d", int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}
