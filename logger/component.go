package logger

// Component is one part of a formatted log line. The set of components is
// closed: DateComponent, LevelComponent, FileComponent, LineComponent,
// FunctionComponent, LocationComponent, MessageComponent and CustomComponent.
type Component interface {
	// kind is the theme selection bit used to colorize the component.
	kind() Components
	name() string
}

// DateComponent renders the entry time with a strftime pattern such as
// "%Y-%m-%d %H:%M:%S.%L", where %L is milliseconds.
type DateComponent struct {
	Format string
}

// LevelComponent renders the level name.
type LevelComponent struct {
	Option LevelOption
}

// FileComponent renders the call-site file path.
type FileComponent struct {
	FullPath      bool
	WithExtension bool
}

// LineComponent renders the call-site line number.
type LineComponent struct{}

// FunctionComponent renders the call-site function, with "(...)" appended
// when the name has no parameter list.
type FunctionComponent struct{}

// LocationComponent renders "file.go:42".
type LocationComponent struct{}

// MessageComponent renders the entry items joined by the entry separator.
type MessageComponent struct{}

// CustomComponent renders the result of Content, called once per line.
type CustomComponent struct {
	Content func() string
}

func (DateComponent) kind() Components     { return ComponentDate }
func (LevelComponent) kind() Components    { return ComponentLevel }
func (FileComponent) kind() Components     { return ComponentFile }
func (LineComponent) kind() Components     { return ComponentLine }
func (FunctionComponent) kind() Components { return ComponentFunction }
func (LocationComponent) kind() Components { return ComponentLocation }
func (MessageComponent) kind() Components  { return ComponentMessage }
func (CustomComponent) kind() Components   { return ComponentCustom }

func (DateComponent) name() string     { return "date" }
func (LevelComponent) name() string    { return "level" }
func (FileComponent) name() string     { return "file" }
func (LineComponent) name() string     { return "line" }
func (FunctionComponent) name() string { return "function" }
func (LocationComponent) name() string { return "location" }
func (MessageComponent) name() string  { return "message" }
func (CustomComponent) name() string   { return "custom" }

// Date returns a date component using the given pattern.
func Date(format string) Component { return DateComponent{Format: format} }

// LevelName returns a level component with the given width policy.
func LevelName(option LevelOption) Component { return LevelComponent{Option: option} }

// File returns a file component.
func File(fullPath, withExtension bool) Component {
	return FileComponent{FullPath: fullPath, WithExtension: withExtension}
}

// Line returns a line number component.
func Line() Component { return LineComponent{} }

// Function returns a function name component.
func Function() Component { return FunctionComponent{} }

// Location returns a "file:line" component.
func Location() Component { return LocationComponent{} }

// Message returns a message component.
func Message() Component { return MessageComponent{} }

// Custom returns a component rendering the result of content.
func Custom(content func() string) Component { return CustomComponent{Content: content} }

type levelMode int

const (
	levelAsIs levelMode = iota
	levelPadLeft
	levelPadRight
	levelTruncate
)

// LevelOption is the width policy of a LevelComponent.
type LevelOption struct {
	mode  levelMode
	width int
}

var (
	// LevelNone leaves the level name unchanged.
	LevelNone = LevelOption{mode: levelAsIs}
	// LevelPadLeft right-aligns the name to the width of the longest level name.
	LevelPadLeft = LevelOption{mode: levelPadLeft}
	// LevelPadRight left-aligns the name to the width of the longest level name.
	LevelPadRight = LevelOption{mode: levelPadRight}
)

// LevelTruncate cuts level names longer than width.
func LevelTruncate(width int) LevelOption {
	return LevelOption{mode: levelTruncate, width: width}
}
