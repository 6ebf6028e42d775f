package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mordilloSan/go-themelog/logger"
)

// Example demonstrating the themelog usage.
func main() {
	configPath := flag.String("config", "", "Path to a TOML logger configuration")
	formatter := flag.String("formatter", "verbose", "Formatter preset: minimal, concise, basic or verbose")
	theme := flag.String("theme", "solarized", "Theme preset: classic, solarized, flat or none")
	flag.Parse()

	// Usage: ./go-themelog [-config logger.toml] [-formatter basic] [-theme flat]
	if *configPath != "" {
		cfg, err := logger.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if err := logger.Init(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	} else {
		f, ok := logger.FormatterByName(*formatter)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown formatter %q\n", *formatter)
			os.Exit(2)
		}
		t, _ := logger.ThemeByName(*theme, logger.ComponentLevel|logger.ComponentMessage)
		logger.SetDefault(logger.New(logger.WithFormatter(f), logger.WithTheme(t))).Close()
	}
	defer logger.Close() // Don't forget to flush pending lines!

	logger.Trace("Called!!!")
	logger.Debugf("starting at %v", time.Now())
	logger.Infoln("ONE", "TWO", "THREE")
	logger.WarnJoin(" - ", "ONE", "TWO", "THREE")
	logger.Error(errors.New("request cancelled"))

	// Closures run only when the level is enabled.
	logger.DebugFunc(func() (string, bool) {
		return fmt.Sprintf("format: %s", logger.Default().Format()), true
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = logger.Flush(ctx)

	// Uncomment to test Fatal methods (will exit the program):
	// logger.Fatal("Fail fast!")
}
