package logger

import "strings"

// Classic returns the classic terminal palette.
func Classic(components Components) *Theme {
	return NewTheme().Foreground(map[Level]Color{
		TraceLevel: 0x808080,
		DebugLevel: 0x00FF00,
		InfoLevel:  0x0000FF,
		WarnLevel:  0xFFFF00,
		ErrorLevel: 0xFF0000,
		FatalLevel: 0xFFFFFF,
	}).Background(map[Level]Color{
		FatalLevel: 0xFF0000,
	}).Components(components).Build()
}

// Solarized returns a palette based on Solarized.
func Solarized(components Components) *Theme {
	return NewTheme().Foreground(map[Level]Color{
		TraceLevel: 0x93A1A2,
		DebugLevel: 0x2AA198,
		InfoLevel:  0x268BD2,
		WarnLevel:  0xB58900,
		ErrorLevel: 0xDC322F,
		FatalLevel: 0xFDF6E3,
	}).Background(map[Level]Color{
		FatalLevel: 0xDC322F,
	}).Components(components).Build()
}

// Flat returns a palette based on the flat UI colors.
func Flat(components Components) *Theme {
	return NewTheme().Foreground(map[Level]Color{
		TraceLevel: 0xE0E0E0,
		DebugLevel: 0x1ABC9C,
		InfoLevel:  0x3498DB,
		WarnLevel:  0xF1C40F,
		ErrorLevel: 0xE74C3C,
		FatalLevel: 0xF5F5F5,
	}).Background(map[Level]Color{
		FatalLevel: 0xE74C3C,
	}).Components(components).Build()
}

// ThemeByName returns the preset called name ("classic", "solarized" or "flat").
func ThemeByName(name string, components Components) (*Theme, bool) {
	switch strings.ToLower(name) {
	case "classic":
		return Classic(components), true
	case "solarized":
		return Solarized(components), true
	case "flat":
		return Flat(components), true
	}
	return nil, false
}
