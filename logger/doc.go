// Package logger provides a leveled, themeable logger whose output is written
// by a background goroutine, without interleaving and in submission order.
//
// # Levels
//
// Six levels are ordered TraceLevel < DebugLevel < InfoLevel < WarnLevel <
// ErrorLevel < FatalLevel. A call is logged when the logger is enabled and the
// call level is at least the logger level. Fatal calls always exit the process
// with status 1, even when the line itself is filtered out.
//
// # Formatting
//
// A Formatter renders a fixed list of components (date, level, file, line,
// function, location, message, custom) through a template with positional
// placeholders:
//
//	f := logger.MustFormatter("[{}] {} {} > {}",
//	    logger.Date("%H:%M:%S.%L"),
//	    logger.LevelName(logger.LevelPadRight),
//	    logger.Location(),
//	    logger.Message(),
//	)
//
// The Minimal, Concise, Basic and Verbose presets cover common layouts.
//
// # Themes
//
// A Theme assigns 24-bit foreground and background colors per level and
// selects which components are colorized:
//
//	theme := logger.NewTheme().
//	    Foreground(map[logger.Level]logger.Color{logger.ErrorLevel: 0xFF0000}).
//	    Components(logger.ComponentLevel | logger.ComponentMessage).
//	    Build()
//
// Classic, Solarized and Flat are ready-made themes. Without a theme, lines
// contain no escape sequences.
//
// # Deferred evaluation
//
// Messages are stringified only after the level check. Expensive values can be
// wrapped in Lazy, or produced by a closure with the Func variants:
//
//	log.Debug(logger.Lazy(func() any { return snapshot() }))
//	log.TraceFunc(func() (string, bool) {
//	    if !verbose {
//	        return "", false
//	    }
//	    return dump(), true
//	})
//
// # Usage
//
// Create a logger, or configure the package-level default from TOML:
//
//	log := logger.New(logger.WithLevel(logger.InfoLevel), logger.WithTheme(logger.Flat(logger.AllComponents)))
//	defer log.Close()
//	log.Infoln("listening on", addr)
//
//	cfg, err := logger.LoadConfig("logger.toml")
//	if err == nil {
//	    err = logger.Init(cfg)
//	}
//	defer logger.Close()
//
// The LOGGER_LEVEL environment variable sets the level when the config leaves it empty:
//
//	LOGGER_LEVEL=warn ./myapp
package logger
