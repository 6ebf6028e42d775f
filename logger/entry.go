package logger

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Site is the source location of a log call.
type Site struct {
	File     string
	Line     int
	Function string
}

// Entry is the data of a single log call handed to a Formatter.
type Entry struct {
	Items      []string
	Separator  string
	Terminator string
	Site       Site
	Time       time.Time
}

// Lazy defers building a log value until the call passes the level gate.
//
//	log.Debug(logger.Lazy(func() any { return dumpState() }))
type Lazy func() any

// stringify renders v, invoking deferred values first.
func stringify(v any) string {
	switch v := v.(type) {
	case Lazy:
		return stringify(v())
	case func() any:
		return stringify(v())
	case func() string:
		return v()
	case string:
		return v
	}
	return fmt.Sprint(v)
}

func stringifyAll(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = stringify(item)
	}
	return out
}

// callSite returns the location skip frames above its caller.
func callSite(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{File: "unknown", Function: "unknown"}
	}
	site := Site{File: file, Line: line, Function: "unknown"}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = trimPackagePath(fn.Name())
	}
	return site
}

// trimPackagePath keeps "package.Function" from a fully qualified name.
func trimPackagePath(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return name
}
