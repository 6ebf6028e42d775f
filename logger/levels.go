package logger

// --- Logger methods ---

// Trace logs a trace message. msg is stringified, and a Lazy value
// evaluated, only when the level is enabled.
// Thread-safe for concurrent use.
func (l *Logger) Trace(msg any) {
	l.logValue(TraceLevel, msg)
}

// Tracef logs a trace message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Tracef(format string, args ...any) {
	l.logFormat(TraceLevel, format, args)
}

// Traceln logs a trace message by joining items with the logger separator.
// Thread-safe for concurrent use.
func (l *Logger) Traceln(items ...any) {
	l.logItems(TraceLevel, l.separator, items)
}

// TraceJoin logs a trace message by joining items with sep.
// Thread-safe for concurrent use.
func (l *Logger) TraceJoin(sep string, items ...any) {
	l.logItems(TraceLevel, sep, items)
}

// TraceFunc logs the result of fn as a trace message. fn runs only when
// the level is enabled; returning false logs nothing.
// Thread-safe for concurrent use.
func (l *Logger) TraceFunc(fn func() (string, bool)) {
	l.logFunc(TraceLevel, fn)
}

// Debug logs a debug message. msg is stringified, and a Lazy value
// evaluated, only when the level is enabled.
// Thread-safe for concurrent use.
func (l *Logger) Debug(msg any) {
	l.logValue(DebugLevel, msg)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Debugf(format string, args ...any) {
	l.logFormat(DebugLevel, format, args)
}

// Debugln logs a debug message by joining items with the logger separator.
// Thread-safe for concurrent use.
func (l *Logger) Debugln(items ...any) {
	l.logItems(DebugLevel, l.separator, items)
}

// DebugJoin logs a debug message by joining items with sep.
// Thread-safe for concurrent use.
func (l *Logger) DebugJoin(sep string, items ...any) {
	l.logItems(DebugLevel, sep, items)
}

// DebugFunc logs the result of fn as a debug message. fn runs only when
// the level is enabled; returning false logs nothing.
// Thread-safe for concurrent use.
func (l *Logger) DebugFunc(fn func() (string, bool)) {
	l.logFunc(DebugLevel, fn)
}

// Info logs an info message. msg is stringified, and a Lazy value
// evaluated, only when the level is enabled.
// Thread-safe for concurrent use.
func (l *Logger) Info(msg any) {
	l.logValue(InfoLevel, msg)
}

// Infof logs an info message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Infof(format string, args ...any) {
	l.logFormat(InfoLevel, format, args)
}

// Infoln logs an info message by joining items with the logger separator.
// Thread-safe for concurrent use.
func (l *Logger) Infoln(items ...any) {
	l.logItems(InfoLevel, l.separator, items)
}

// InfoJoin logs an info message by joining items with sep.
// Thread-safe for concurrent use.
func (l *Logger) InfoJoin(sep string, items ...any) {
	l.logItems(InfoLevel, sep, items)
}

// InfoFunc logs the result of fn as an info message. fn runs only when
// the level is enabled; returning false logs nothing.
// Thread-safe for concurrent use.
func (l *Logger) InfoFunc(fn func() (string, bool)) {
	l.logFunc(InfoLevel, fn)
}

// Warn logs a warning message. msg is stringified, and a Lazy value
// evaluated, only when the level is enabled.
// Thread-safe for concurrent use.
func (l *Logger) Warn(msg any) {
	l.logValue(WarnLevel, msg)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Warnf(format string, args ...any) {
	l.logFormat(WarnLevel, format, args)
}

// Warnln logs a warning message by joining items with the logger separator.
// Thread-safe for concurrent use.
func (l *Logger) Warnln(items ...any) {
	l.logItems(WarnLevel, l.separator, items)
}

// WarnJoin logs a warning message by joining items with sep.
// Thread-safe for concurrent use.
func (l *Logger) WarnJoin(sep string, items ...any) {
	l.logItems(WarnLevel, sep, items)
}

// WarnFunc logs the result of fn as a warning message. fn runs only when
// the level is enabled; returning false logs nothing.
// Thread-safe for concurrent use.
func (l *Logger) WarnFunc(fn func() (string, bool)) {
	l.logFunc(WarnLevel, fn)
}

// Error logs an error message. msg is stringified, and a Lazy value
// evaluated, only when the level is enabled.
// Thread-safe for concurrent use.
func (l *Logger) Error(msg any) {
	l.logValue(ErrorLevel, msg)
}

// Errorf logs an error message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Errorf(format string, args ...any) {
	l.logFormat(ErrorLevel, format, args)
}

// Errorln logs an error message by joining items with the logger separator.
// Thread-safe for concurrent use.
func (l *Logger) Errorln(items ...any) {
	l.logItems(ErrorLevel, l.separator, items)
}

// ErrorJoin logs an error message by joining items with sep.
// Thread-safe for concurrent use.
func (l *Logger) ErrorJoin(sep string, items ...any) {
	l.logItems(ErrorLevel, sep, items)
}

// ErrorFunc logs the result of fn as an error message. fn runs only when
// the level is enabled; returning false logs nothing.
// Thread-safe for concurrent use.
func (l *Logger) ErrorFunc(fn func() (string, bool)) {
	l.logFunc(ErrorLevel, fn)
}

// Fatal logs a fatal message and then calls os.Exit(1). msg is stringified, and a Lazy value
// evaluated, only when the level is enabled.
// The process exits even when the level is filtered out.
// Thread-safe for concurrent use.
func (l *Logger) Fatal(msg any) {
	l.logValue(FatalLevel, msg)
	l.exit()
}

// Fatalf logs a fatal message formatted with fmt.Sprintf and then calls os.Exit(1).
// Thread-safe for concurrent use.
func (l *Logger) Fatalf(format string, args ...any) {
	l.logFormat(FatalLevel, format, args)
	l.exit()
}

// Fatalln logs a fatal message by joining items with the logger separator and then calls os.Exit(1).
// Thread-safe for concurrent use.
func (l *Logger) Fatalln(items ...any) {
	l.logItems(FatalLevel, l.separator, items)
	l.exit()
}

// FatalJoin logs a fatal message by joining items with sep and then calls os.Exit(1).
// Thread-safe for concurrent use.
func (l *Logger) FatalJoin(sep string, items ...any) {
	l.logItems(FatalLevel, sep, items)
	l.exit()
}

// FatalFunc logs the result of fn as a fatal message and then calls os.Exit(1). fn runs only when
// the level is enabled; returning false logs nothing.
// Thread-safe for concurrent use.
func (l *Logger) FatalFunc(fn func() (string, bool)) {
	l.logFunc(FatalLevel, fn)
	l.exit()
}

// --- Package-level functions (default logger) ---

// Trace logs a trace message with the default logger.
func Trace(msg any) {
	l := std.Load()
	l.logValue(TraceLevel, msg)
}

// Tracef logs a trace message formatted with fmt.Sprintf with the default logger.
func Tracef(format string, args ...any) {
	l := std.Load()
	l.logFormat(TraceLevel, format, args)
}

// Traceln logs a trace message by joining items with the default logger separator.
func Traceln(items ...any) {
	l := std.Load()
	l.logItems(TraceLevel, l.separator, items)
}

// TraceJoin logs a trace message by joining items with sep with the default logger.
func TraceJoin(sep string, items ...any) {
	l := std.Load()
	l.logItems(TraceLevel, sep, items)
}

// TraceFunc logs the result of fn as a trace message with the default logger.
func TraceFunc(fn func() (string, bool)) {
	l := std.Load()
	l.logFunc(TraceLevel, fn)
}

// Debug logs a debug message with the default logger.
func Debug(msg any) {
	l := std.Load()
	l.logValue(DebugLevel, msg)
}

// Debugf logs a debug message formatted with fmt.Sprintf with the default logger.
func Debugf(format string, args ...any) {
	l := std.Load()
	l.logFormat(DebugLevel, format, args)
}

// Debugln logs a debug message by joining items with the default logger separator.
func Debugln(items ...any) {
	l := std.Load()
	l.logItems(DebugLevel, l.separator, items)
}

// DebugJoin logs a debug message by joining items with sep with the default logger.
func DebugJoin(sep string, items ...any) {
	l := std.Load()
	l.logItems(DebugLevel, sep, items)
}

// DebugFunc logs the result of fn as a debug message with the default logger.
func DebugFunc(fn func() (string, bool)) {
	l := std.Load()
	l.logFunc(DebugLevel, fn)
}

// Info logs an info message with the default logger.
func Info(msg any) {
	l := std.Load()
	l.logValue(InfoLevel, msg)
}

// Infof logs an info message formatted with fmt.Sprintf with the default logger.
func Infof(format string, args ...any) {
	l := std.Load()
	l.logFormat(InfoLevel, format, args)
}

// Infoln logs an info message by joining items with the default logger separator.
func Infoln(items ...any) {
	l := std.Load()
	l.logItems(InfoLevel, l.separator, items)
}

// InfoJoin logs an info message by joining items with sep with the default logger.
func InfoJoin(sep string, items ...any) {
	l := std.Load()
	l.logItems(InfoLevel, sep, items)
}

// InfoFunc logs the result of fn as an info message with the default logger.
func InfoFunc(fn func() (string, bool)) {
	l := std.Load()
	l.logFunc(InfoLevel, fn)
}

// Warn logs a warning message with the default logger.
func Warn(msg any) {
	l := std.Load()
	l.logValue(WarnLevel, msg)
}

// Warnf logs a warning message formatted with fmt.Sprintf with the default logger.
func Warnf(format string, args ...any) {
	l := std.Load()
	l.logFormat(WarnLevel, format, args)
}

// Warnln logs a warning message by joining items with the default logger separator.
func Warnln(items ...any) {
	l := std.Load()
	l.logItems(WarnLevel, l.separator, items)
}

// WarnJoin logs a warning message by joining items with sep with the default logger.
func WarnJoin(sep string, items ...any) {
	l := std.Load()
	l.logItems(WarnLevel, sep, items)
}

// WarnFunc logs the result of fn as a warning message with the default logger.
func WarnFunc(fn func() (string, bool)) {
	l := std.Load()
	l.logFunc(WarnLevel, fn)
}

// Error logs an error message with the default logger.
func Error(msg any) {
	l := std.Load()
	l.logValue(ErrorLevel, msg)
}

// Errorf logs an error message formatted with fmt.Sprintf with the default logger.
func Errorf(format string, args ...any) {
	l := std.Load()
	l.logFormat(ErrorLevel, format, args)
}

// Errorln logs an error message by joining items with the default logger separator.
func Errorln(items ...any) {
	l := std.Load()
	l.logItems(ErrorLevel, l.separator, items)
}

// ErrorJoin logs an error message by joining items with sep with the default logger.
func ErrorJoin(sep string, items ...any) {
	l := std.Load()
	l.logItems(ErrorLevel, sep, items)
}

// ErrorFunc logs the result of fn as an error message with the default logger.
func ErrorFunc(fn func() (string, bool)) {
	l := std.Load()
	l.logFunc(ErrorLevel, fn)
}

// Fatal logs a fatal message with the default logger and then calls os.Exit(1).
func Fatal(msg any) {
	l := std.Load()
	l.logValue(FatalLevel, msg)
	l.exit()
}

// Fatalf logs a fatal message formatted with fmt.Sprintf with the default logger and then calls os.Exit(1).
func Fatalf(format string, args ...any) {
	l := std.Load()
	l.logFormat(FatalLevel, format, args)
	l.exit()
}

// Fatalln logs a fatal message by joining items with the default logger separator and then calls os.Exit(1).
func Fatalln(items ...any) {
	l := std.Load()
	l.logItems(FatalLevel, l.separator, items)
	l.exit()
}

// FatalJoin logs a fatal message by joining items with sep with the default logger and then calls os.Exit(1).
func FatalJoin(sep string, items ...any) {
	l := std.Load()
	l.logItems(FatalLevel, sep, items)
	l.exit()
}

// FatalFunc logs the result of fn as a fatal message with the default logger and then calls os.Exit(1).
func FatalFunc(fn func() (string, bool)) {
	l := std.Load()
	l.logFunc(FatalLevel, fn)
	l.exit()
}
