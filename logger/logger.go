package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// fatalFlushTimeout bounds how long fatal calls wait for queued output before exiting.
const fatalFlushTimeout = time.Second

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
	exitFunc            = os.Exit
)

// Logger filters, formats and writes log lines. Formatting runs on the calling
// goroutine; writing happens on a single background goroutine owned by the
// Logger, so lines are never interleaved and lines logged by one goroutine
// appear in call order.
//
// The enabled flag, level, formatter and theme are plain fields. Changing them
// while other goroutines log through the same Logger is a data race; configure
// a Logger before sharing it.
type Logger struct {
	enabled    bool
	level      Level
	formatter  *Formatter
	theme      *Theme
	separator  string
	terminator string

	writer     io.Writer
	filePath   string
	file       *os.File
	bufferSize int
	onError    func(error)
	syslog     *bool

	sink *sink
}

// Option configures a Logger created by New.
type Option func(*Logger)

// WithWriter sets the output destination. Default: standard output.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.writer = w
	}
}

// WithLevel sets the minimum level. Default: TraceLevel.
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// WithEnabled turns the logger on or off. Default: true.
func WithEnabled(enabled bool) Option {
	return func(l *Logger) {
		l.enabled = enabled
	}
}

// WithFormatter sets the line formatter. Default: Basic.
func WithFormatter(f *Formatter) Option {
	return func(l *Logger) {
		if f != nil {
			l.formatter = f
		}
	}
}

// WithTheme sets the color theme; nil disables colors. Default: nil.
func WithTheme(t *Theme) Option {
	return func(l *Logger) {
		l.theme = t
	}
}

// WithSeparator sets the separator used by the ln methods. Default: " ".
func WithSeparator(sep string) Option {
	return func(l *Logger) {
		l.separator = sep
	}
}

// WithTerminator sets the string written after each line. Default: "\n".
func WithTerminator(term string) Option {
	return func(l *Logger) {
		l.terminator = term
	}
}

// WithBufferSize sets how many lines may wait for the writer before log
// calls block. Default: 1024.
func WithBufferSize(n int) Option {
	return func(l *Logger) {
		l.bufferSize = n
	}
}

// WithErrorHandler is called for every failed write, in order, on a goroutine
// separate from the writer. It may log through the same Logger. Errors are
// dropped while 64 of them are waiting for the handler.
// Default: report on standard error.
func WithErrorHandler(fn func(error)) Option {
	return func(l *Logger) {
		l.onError = fn
	}
}

// WithFile also appends every line, without color escapes, to the file at path.
func WithFile(path string) Option {
	return func(l *Logger) {
		l.filePath = path
	}
}

// WithSyslogPrefix prepends journald priorities such as "<6>" to every line.
// Default: enabled when JOURNAL_STREAM is set and no theme is attached.
func WithSyslogPrefix(enabled bool) Option {
	return func(l *Logger) {
		l.syslog = &enabled
	}
}

func withOpenFile(f *os.File) Option {
	return func(l *Logger) {
		l.file = f
	}
}

// New creates a Logger and starts its writer goroutine. Call Close to stop it.
func New(opts ...Option) *Logger {
	l := &Logger{
		enabled:    true,
		level:      TraceLevel,
		formatter:  Basic,
		separator:  " ",
		terminator: "\n",
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.writer == nil {
		l.writer = consoleWriter(l.theme != nil)
	}
	if l.file == nil && l.filePath != "" {
		f, err := openLogFile(l.filePath)
		if err != nil {
			fmt.Fprintf(outStderr, "failed to open log file %s: %v\n", l.filePath, err)
		} else {
			l.file = f
		}
	}
	syslog := l.theme == nil && shouldUseSyslogPrefix()
	if l.syslog != nil {
		syslog = *l.syslog
	}

	l.sink = newSink(l.writer, l.file, syslog, l.bufferSize, l.onError)
	return l
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// consoleWriter returns standard output, made ANSI-capable on Windows consoles
// when colors are requested.
func consoleWriter(colored bool) io.Writer {
	if f, ok := outStdout.(*os.File); ok && colored {
		return colorable.NewColorable(f)
	}
	return outStdout
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether the logger is on.
func (l *Logger) Enabled() bool { return l.enabled }

// SetEnabled turns the logger on or off.
func (l *Logger) SetEnabled(enabled bool) { l.enabled = enabled }

// Level returns the minimum level.
func (l *Logger) Level() Level { return l.level }

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level Level) { l.level = level }

// Formatter returns the current formatter.
func (l *Logger) Formatter() *Formatter { return l.formatter }

// SetFormatter replaces the formatter. A nil formatter is ignored.
func (l *Logger) SetFormatter(f *Formatter) {
	if f != nil {
		l.formatter = f
	}
}

// Theme returns the current theme, or nil.
func (l *Logger) Theme() *Theme { return l.theme }

// SetTheme replaces the theme; nil disables colors.
func (l *Logger) SetTheme(t *Theme) { l.theme = t }

// Format describes the formatter template, e.g. "[#date] #level > #message".
func (l *Logger) Format() string { return l.formatter.String() }

// Colors shows the level names in the theme colors, or "" without a theme.
func (l *Logger) Colors() string { return l.theme.String() }

// IsEnabled reports whether a call at level would be logged.
func (l *Logger) IsEnabled(level Level) bool {
	return l.enabled && level >= l.level
}

// Log formats e at level and queues it for writing. Items, separator,
// terminator and site are used as given; a zero Time is set to now.
func (l *Logger) Log(level Level, e Entry) {
	if !l.IsEnabled(level) {
		return
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	l.emit(level, &e)
}

// Flush blocks until every line logged before the call has been written, or ctx is done.
func (l *Logger) Flush(ctx context.Context) error {
	return l.sink.flush(ctx)
}

// Close writes pending lines, stops the writer goroutine and closes the log
// file. Later log calls are dropped.
func (l *Logger) Close() error {
	return l.sink.close()
}

func (l *Logger) emit(level Level, e *Entry) {
	text := l.formatter.Format(level, e, l.theme)
	l.sink.submit(record{level: level, text: text + e.Terminator})
}

func (l *Logger) dispatch(level Level, items []string, sep string, site Site) {
	l.emit(level, &Entry{
		Items:      items,
		Separator:  sep,
		Terminator: l.terminator,
		Site:       site,
		Time:       time.Now(),
	})
}

// The log* helpers must be called directly by the exported entry points so
// that callSite(2) resolves to the user's frame.

func (l *Logger) logValue(level Level, msg any) {
	if !l.IsEnabled(level) {
		return
	}
	l.dispatch(level, []string{stringify(msg)}, "", callSite(2))
}

func (l *Logger) logItems(level Level, sep string, items []any) {
	if !l.IsEnabled(level) {
		return
	}
	l.dispatch(level, stringifyAll(items), sep, callSite(2))
}

func (l *Logger) logFormat(level Level, format string, args []any) {
	if !l.IsEnabled(level) {
		return
	}
	l.dispatch(level, []string{fmt.Sprintf(format, args...)}, "", callSite(2))
}

func (l *Logger) logFunc(level Level, fn func() (string, bool)) {
	if !l.IsEnabled(level) || fn == nil {
		return
	}
	msg, ok := fn()
	if !ok {
		return
	}
	l.dispatch(level, []string{msg}, "", callSite(2))
}

// exit flushes queued output, bounded by fatalFlushTimeout, and terminates the process.
func (l *Logger) exit() {
	ctx, cancel := context.WithTimeout(context.Background(), fatalFlushTimeout)
	defer cancel()
	_ = l.sink.flush(ctx)
	exitFunc(1)
}

// global state
var std atomic.Pointer[Logger]

func init() {
	std.Store(newDefault())
}

// newDefault logs everything to standard output with the Basic formatter,
// colorized with Solarized when standard output is a terminal.
func newDefault() *Logger {
	var theme *Theme
	if isTerminal(outStdout) {
		theme = Solarized(ComponentLevel)
	}
	return New(WithTheme(theme))
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	return std.Load()
}

// SetDefault replaces the logger used by the package-level functions. The
// previous logger is returned and left running. A nil logger is ignored.
func SetDefault(l *Logger) *Logger {
	if l == nil {
		return std.Load()
	}
	return std.Swap(l)
}

// Flush waits for the default logger's pending lines.
func Flush(ctx context.Context) error {
	return std.Load().Flush(ctx)
}
