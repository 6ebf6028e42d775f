package logger

import (
	"io"
	"os"
	"strings"
)

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// syslogPrefixForLevel returns the journald priority prefix of level.
func syslogPrefixForLevel(level Level) string {
	switch level {
	case TraceLevel, DebugLevel:
		return "<7>"
	case InfoLevel:
		return "<6>"
	case WarnLevel:
		return "<4>"
	case ErrorLevel:
		return "<3>"
	case FatalLevel:
		return "<2>"
	default:
		return ""
	}
}

// syslogPrefixWriter prepends the syslog priority prefix to each line.
type syslogPrefixWriter struct {
	w      io.Writer
	prefix string
}

func (s *syslogPrefixWriter) Write(data []byte) (int, error) {
	if s.prefix == "" {
		return s.w.Write(data)
	}
	if len(data) == 0 {
		return 0, nil
	}
	buf := make([]byte, 0, len(data)+len(s.prefix))
	buf = append(buf, s.prefix...)
	for i, b := range data {
		buf = append(buf, b)
		if b == '\n' && i != len(data)-1 {
			buf = append(buf, s.prefix...)
		}
	}
	if _, err := s.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}

// plainWriter strips ANSI escape sequences before writing, for file output.
type plainWriter struct {
	w io.Writer
}

func (p *plainWriter) Write(data []byte) (int, error) {
	if _, err := io.WriteString(p.w, stripANSI(string(data))); err != nil {
		return 0, err
	}
	return len(data), nil
}

// stripANSI removes CSI sequences such as "\x1b[38;2;255;0;0m".
func stripANSI(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			// Parameters and intermediates run until a final byte in 0x40-0x7E.
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7E) {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
