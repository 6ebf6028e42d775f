package logger

import "strings"

var (
	// Minimal renders "INFO | main.go:12 > message".
	Minimal = MustFormatter("{} | {} > {}",
		LevelName(LevelPadLeft),
		Location(),
		Message(),
	)

	// Concise renders "[15:04:05]  INFO | main.go:12 > message".
	Concise = MustFormatter("[{}] {} | {} > {}",
		Date("%H:%M:%S"),
		LevelName(LevelPadLeft),
		Location(),
		Message(),
	)

	// Basic renders "[2006-01-02 15:04:05.000]  INFO | main.go:12 > message".
	Basic = MustFormatter("[{}] {} | {} > {}",
		Date("%Y-%m-%d %H:%M:%S.%L"),
		LevelName(LevelPadLeft),
		Location(),
		Message(),
	)

	// Verbose adds the function name and puts the message on its own line.
	Verbose = MustFormatter("[{}] {} | {}:{} - {}\n> {}",
		Date("%Y-%m-%d %H:%M:%S.%L"),
		LevelName(LevelPadLeft),
		File(false, true),
		Line(),
		Function(),
		Message(),
	)
)

// FormatterByName returns the preset called name ("minimal", "concise", "basic" or "verbose").
func FormatterByName(name string) (*Formatter, bool) {
	switch strings.ToLower(name) {
	case "minimal":
		return Minimal, true
	case "concise":
		return Concise, true
	case "basic":
		return Basic, true
	case "verbose":
		return Verbose, true
	}
	return nil, false
}
