package logger

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"
	"github.com/valyala/fasttemplate"
)

var (
	// ErrTemplateMismatch is returned when template placeholders and components do not line up.
	ErrTemplateMismatch = errors.New("logger: template does not match components")
	// ErrInvalidFormatter is returned for malformed templates or components.
	ErrInvalidFormatter = errors.New("logger: invalid formatter")
)

// Formatter renders log entries through a template such as "[{}] {} > {}".
// Each "{}" placeholder takes the next component; "{n}" takes the n-th
// component (1-based), and a following "{}" continues from n+1. Every
// component must be used by exactly one placeholder. Write "{{" and "}}" for
// literal braces: "json={{{}}}" renders as "json={...}".
//
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	template   string
	components []Component
	tpl        *fasttemplate.Template
	// order[i] is the component index substituted into placeholder i.
	order []int
	dates []*strftime.Strftime
}

// literalBrace is the tag an escaped "{{" is rewritten to.
const literalBrace = "{"

// escapeBraces rewrites "{{" to the literalBrace tag and "}}" to "}", leaving
// placeholders untouched.
func escapeBraces(s string) string {
	if !strings.Contains(s, "{{") && !strings.Contains(s, "}}") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '{' && i+1 < len(s) && s[i+1] == '{':
			b.WriteString("{" + literalBrace + "}")
			i++
		case s[i] == '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				b.WriteString(s[i:])
				return b.String()
			}
			b.WriteString(s[i : i+end+1])
			i += end
		case s[i] == '}' && i+1 < len(s) && s[i+1] == '}':
			b.WriteByte('}')
			i++
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// NewFormatter checks template against components and returns a Formatter.
func NewFormatter(template string, components ...Component) (*Formatter, error) {
	tpl, err := fasttemplate.NewTemplate(escapeBraces(template), "{", "}")
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormatter, "template %q: %v", template, err)
	}

	var tags []string
	tpl.ExecuteFuncString(func(_ io.Writer, tag string) (int, error) {
		if tag != literalBrace {
			tags = append(tags, tag)
		}
		return 0, nil
	})
	if len(tags) != len(components) {
		return nil, errors.Wrapf(ErrTemplateMismatch, "template %q has %d placeholders for %d components",
			template, len(tags), len(components))
	}

	f := &Formatter{
		template:   template,
		components: append([]Component(nil), components...),
		tpl:        tpl,
		order:      make([]int, len(tags)),
		dates:      make([]*strftime.Strftime, len(components)),
	}

	used := make([]bool, len(components))
	next := 0
	for i, tag := range tags {
		idx := next
		if tag = strings.TrimSpace(tag); tag != "" {
			n, err := strconv.Atoi(tag)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidFormatter, "template %q: bad placeholder {%s}", template, tag)
			}
			idx = n - 1
		}
		if idx < 0 || idx >= len(components) {
			return nil, errors.Wrapf(ErrTemplateMismatch, "template %q: placeholder %d refers to component %d of %d",
				template, i+1, idx+1, len(components))
		}
		if used[idx] {
			return nil, errors.Wrapf(ErrTemplateMismatch, "template %q: component %d is used twice", template, idx+1)
		}
		used[idx] = true
		f.order[i] = idx
		next = idx + 1
	}

	for i, c := range f.components {
		switch c := c.(type) {
		case DateComponent:
			layout, err := strftime.New(c.Format, strftime.WithMilliseconds('L'))
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidFormatter, "date component %d: %v", i+1, err)
			}
			f.dates[i] = layout
		case LevelComponent:
			if c.Option.mode == levelTruncate && c.Option.width < 0 {
				return nil, errors.Wrapf(ErrInvalidFormatter, "level component %d: negative width %d", i+1, c.Option.width)
			}
		case CustomComponent:
			if c.Content == nil {
				return nil, errors.Wrapf(ErrInvalidFormatter, "custom component %d has no content", i+1)
			}
		case nil:
			return nil, errors.Wrapf(ErrInvalidFormatter, "component %d is nil", i+1)
		}
	}
	return f, nil
}

// MustFormatter is like NewFormatter but panics on error.
func MustFormatter(template string, components ...Component) *Formatter {
	f, err := NewFormatter(template, components...)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders e at level, colorizing components with theme when it is not nil.
func (f *Formatter) Format(level Level, e *Entry, theme *Theme) string {
	values := make([]string, len(f.components))
	for i, c := range f.components {
		var text string
		switch c := c.(type) {
		case DateComponent:
			text = f.dates[i].FormatString(e.Time)
		case LevelComponent:
			text = formatLevel(level, c.Option)
		case FileComponent:
			text = formatFile(e.Site.File, c.FullPath, c.WithExtension)
		case LineComponent:
			text = strconv.Itoa(e.Site.Line)
		case FunctionComponent:
			text = formatFunction(e.Site.Function)
		case LocationComponent:
			text = formatLocation(e.Site.File, e.Site.Line)
		case MessageComponent:
			text = strings.Join(e.Items, e.Separator)
		case CustomComponent:
			text = c.Content()
		}
		values[i] = theme.Colorize(text, level, c.kind())
	}

	i := 0
	return f.tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if tag == literalBrace {
			return io.WriteString(w, "{")
		}
		v := values[f.order[i]]
		i++
		return io.WriteString(w, v)
	})
}

// String shows the template with each placeholder replaced by "#component".
func (f *Formatter) String() string {
	i := 0
	return f.tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if tag == literalBrace {
			return io.WriteString(w, "{")
		}
		name := "#" + f.components[f.order[i]].name()
		i++
		return io.WriteString(w, name)
	})
}

// Components returns a copy of the formatter components.
func (f *Formatter) Components() []Component {
	return append([]Component(nil), f.components...)
}

func formatLevel(level Level, option LevelOption) string {
	text := level.String()
	switch option.mode {
	case levelPadLeft:
		if pad := maxLevelWidth - len(text); pad > 0 {
			return strings.Repeat(" ", pad) + text
		}
	case levelPadRight:
		if pad := maxLevelWidth - len(text); pad > 0 {
			return text + strings.Repeat(" ", pad)
		}
	case levelTruncate:
		if len(text) > option.width {
			return text[:option.width]
		}
	}
	return text
}

func formatFile(file string, fullPath, withExtension bool) string {
	if file == "" {
		return ""
	}
	if !fullPath {
		file = filepath.Base(file)
	}
	if !withExtension {
		file = strings.TrimSuffix(file, filepath.Ext(file))
	}
	return file
}

func formatFunction(function string) string {
	if strings.HasSuffix(function, ")") {
		return function
	}
	return function + "(...)"
}

func formatLocation(file string, line int) string {
	return formatFile(file, false, true) + ":" + strconv.Itoa(line)
}

// Template returns the template the formatter was built from.
func (f *Formatter) Template() string {
	return f.template
}
