package logger

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Components selects which parts of a log line a Theme colorizes.
type Components uint8

const (
	ComponentDate Components = 1 << iota
	ComponentLevel
	ComponentFile
	ComponentLine
	ComponentFunction
	ComponentLocation
	ComponentMessage
	ComponentCustom

	// AllComponents selects every component.
	AllComponents = ComponentDate | ComponentLevel | ComponentFile | ComponentLine |
		ComponentFunction | ComponentLocation | ComponentMessage | ComponentCustom
)

var componentNames = map[string]Components{
	"date":     ComponentDate,
	"level":    ComponentLevel,
	"file":     ComponentFile,
	"line":     ComponentLine,
	"function": ComponentFunction,
	"location": ComponentLocation,
	"message":  ComponentMessage,
	"custom":   ComponentCustom,
	"all":      AllComponents,
}

// Has reports whether every bit of o is selected. The empty set is never selected.
func (c Components) Has(o Components) bool {
	return o != 0 && c&o == o
}

// ParseComponents maps names such as "level" or "message" to a component set.
func ParseComponents(names []string) (Components, error) {
	var c Components
	for _, name := range names {
		bit, ok := componentNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, errors.Errorf("logger: unknown component %q", name)
		}
		c |= bit
	}
	return c, nil
}

// Palette is the optional foreground/background pair of one level.
type Palette struct {
	Foreground    Color
	Background    Color
	HasForeground bool
	HasBackground bool
}

func (p Palette) empty() bool {
	return !p.HasForeground && !p.HasBackground
}

// Theme colorizes log line components per level. A Theme is immutable once
// built and may be shared by any number of loggers and goroutines.
type Theme struct {
	palettes   [FatalLevel + 1]Palette
	styles     [FatalLevel + 1]*color.Color
	components Components
}

// ThemeBuilder stages a Theme. Builders are not safe for concurrent use.
type ThemeBuilder struct {
	palettes   [FatalLevel + 1]Palette
	components Components
}

// NewTheme returns a builder with no colors set and only the level component selected.
func NewTheme() *ThemeBuilder {
	return &ThemeBuilder{components: ComponentLevel}
}

// Foreground sets the foreground color of the given levels. Other levels keep their value.
func (b *ThemeBuilder) Foreground(colors map[Level]Color) *ThemeBuilder {
	for level, c := range colors {
		if level.valid() {
			b.palettes[level].Foreground = c
			b.palettes[level].HasForeground = true
		}
	}
	return b
}

// Background sets the background color of the given levels. Other levels keep their value.
func (b *ThemeBuilder) Background(colors map[Level]Color) *ThemeBuilder {
	for level, c := range colors {
		if level.valid() {
			b.palettes[level].Background = c
			b.palettes[level].HasBackground = true
		}
	}
	return b
}

// Components replaces the set of colorized components.
func (b *ThemeBuilder) Components(c Components) *ThemeBuilder {
	b.components = c
	return b
}

// Build freezes the builder into a Theme.
func (b *ThemeBuilder) Build() *Theme {
	t := &Theme{palettes: b.palettes, components: b.components}
	for level, p := range t.palettes {
		if !p.empty() {
			t.styles[level] = newStyle(p)
		}
	}
	return t
}

func newStyle(p Palette) *color.Color {
	c := color.New()
	if p.HasForeground {
		r, g, b := p.Foreground.RGB()
		c.AddRGB(int(r), int(g), int(b))
	}
	if p.HasBackground {
		r, g, b := p.Background.RGB()
		c.AddBgRGB(int(r), int(g), int(b))
	}
	// The caller chose to attach a theme; terminal detection must not undo that.
	// Sprint closes with one reset per parameter ("\x1b[0;22;0;0;0m" for an
	// RGB foreground); the leading 0 resets every attribute.
	c.EnableColor()
	return c
}

// Colorize wraps text in the escape sequences of level when component is
// selected by the theme. A nil Theme returns text unchanged.
func (t *Theme) Colorize(text string, level Level, component Components) string {
	if t == nil || !level.valid() || !t.components.Has(component) {
		return text
	}
	style := t.styles[level]
	if style == nil {
		return text
	}
	return style.Sprint(text)
}

// Builder returns a new builder seeded with the theme's colors and components.
func (t *Theme) Builder() *ThemeBuilder {
	if t == nil {
		return NewTheme()
	}
	return &ThemeBuilder{palettes: t.palettes, components: t.components}
}

// Palette returns the colors configured for level.
func (t *Theme) Palette(level Level) Palette {
	if t == nil || !level.valid() {
		return Palette{}
	}
	return t.palettes[level]
}

// Components returns the colorized component set.
func (t *Theme) Components() Components {
	if t == nil {
		return 0
	}
	return t.components
}

// String renders every level name in its own colors.
func (t *Theme) String() string {
	if t == nil {
		return ""
	}
	names := make([]string, 0, len(levelNames))
	for _, level := range AllLevels() {
		name := level.String()
		if style := t.styles[level]; style != nil {
			name = style.Sprint(name)
		}
		names = append(names, name)
	}
	return strings.Join(names, " ")
}
