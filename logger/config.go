package logger

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("logger: invalid configuration")

// Config describes a Logger in a form that can be decoded from TOML:
//
//	level      = "info"
//	formatter  = "verbose"
//	theme      = "flat"
//	components = ["level", "message"]
//
//	[foreground]
//	error = "#ff5555"
type Config struct {
	// Enabled turns logging on or off; nil means on.
	// Default: nil (enabled)
	Enabled *bool `toml:"enabled"`
	// Level is the minimum level; empty falls back to LOGGER_LEVEL, then "trace".
	// Default: ""
	Level string `toml:"level" validate:"omitempty,level"`
	// Formatter names a preset: minimal, concise, basic or verbose.
	// Default: "basic"
	Formatter string `toml:"formatter" validate:"omitempty,oneof=minimal concise basic verbose"`
	// Theme names a preset: none, classic, solarized or flat.
	// Default: "none"
	Theme string `toml:"theme" validate:"omitempty,oneof=none classic solarized flat"`
	// Color decides when the theme is applied: auto (only on a terminal), always or never.
	// Default: "auto"
	Color string `toml:"color" validate:"omitempty,oneof=auto always never"`
	// Components lists the colorized components.
	// Default: ["level"]
	Components []string `toml:"components" validate:"dive,component"`
	// Foreground overrides theme foreground colors per level, e.g. error = "#ff0000".
	Foreground map[string]string `toml:"foreground" validate:"dive,keys,level,endkeys,hexcolor"`
	// Background overrides theme background colors per level.
	Background map[string]string `toml:"background" validate:"dive,keys,level,endkeys,hexcolor"`
	// Separator joins the items of the ln methods.
	// Default: " "
	Separator *string `toml:"separator"`
	// FilePath also writes plain lines to this file (created/appended); empty disables it.
	// Default: ""
	FilePath string `toml:"file_path"`
	// BufferSize is the number of lines that may wait for the writer.
	// Default: 1024
	BufferSize int `toml:"buffer_size" validate:"gte=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("level", validateLevelName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("component", validateComponentName); err != nil {
		panic(err)
	}

	// Report field names as they appear in the TOML file.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateLevelName(fl validator.FieldLevel) bool {
	_, err := ParseLevel(fl.Field().String())
	return err == nil
}

func validateComponentName(fl validator.FieldLevel) bool {
	_, err := ParseComponents([]string{fl.Field().String()})
	return err == nil
}

// ParseConfig decodes a TOML document and validates it.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, errors.Wrapf(ErrInvalidConfig, "line %d, column %d: %s", row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return Config{}, errors.Wrap(ErrInvalidConfig, serr.String())
		}
		return Config{}, errors.Wrap(err, "logger: failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "logger: failed to read config file")
	}
	cfg, err := ParseConfig(content)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

// Validate checks the configuration and reports every invalid field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		if e.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q (%s)", field, e.Tag(), e.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", field, e.Tag()))
		}
	}
	return errors.Wrap(ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Options converts the configuration into Logger options.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	level := TraceLevel
	name := c.Level
	if name == "" {
		name = os.Getenv("LOGGER_LEVEL")
	}
	if name != "" {
		l, err := ParseLevel(name)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidConfig, err.Error())
		}
		level = l
	}

	formatter := Basic
	if c.Formatter != "" {
		formatter, _ = FormatterByName(c.Formatter)
	}

	theme, err := c.theme()
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithLevel(level),
		WithFormatter(formatter),
		WithTheme(theme),
		WithBufferSize(c.BufferSize),
	}
	if c.Enabled != nil {
		opts = append(opts, WithEnabled(*c.Enabled))
	}
	if c.Separator != nil {
		opts = append(opts, WithSeparator(*c.Separator))
	}
	return opts, nil
}

func (c Config) theme() (*Theme, error) {
	switch c.Color {
	case "never":
		return nil, nil
	case "", "auto":
		if !isTerminal(outStdout) {
			return nil, nil
		}
	}

	components := ComponentLevel
	if len(c.Components) > 0 {
		var err error
		if components, err = ParseComponents(c.Components); err != nil {
			return nil, errors.Wrap(ErrInvalidConfig, err.Error())
		}
	}

	base, ok := ThemeByName(c.Theme, components)
	if !ok && len(c.Foreground) == 0 && len(c.Background) == 0 {
		return nil, nil
	}
	b := base.Builder().Components(components)

	fg, err := levelColors(c.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := levelColors(c.Background)
	if err != nil {
		return nil, err
	}
	return b.Foreground(fg).Background(bg).Build(), nil
}

func levelColors(m map[string]string) (map[Level]Color, error) {
	out := make(map[Level]Color, len(m))
	for name, hex := range m {
		level, err := ParseLevel(name)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidConfig, err.Error())
		}
		c, err := ParseColor(hex)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidConfig, err.Error())
		}
		out[level] = c
	}
	return out, nil
}

// NewFromConfig validates cfg and creates a Logger writing to standard output.
// Unlike WithFile, an unopenable FilePath is reported as an error.
func NewFromConfig(cfg Config, opts ...Option) (*Logger, error) {
	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	if cfg.FilePath != "" {
		f, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, errors.Wrapf(err, "logger: failed to open log file %s", cfg.FilePath)
		}
		base = append(base, withOpenFile(f))
	}
	return New(append(base, opts...)...), nil
}

// Init replaces the default logger with one built from cfg and closes the previous one.
// Call Close() when shutting down to flush pending lines and close the log file.
func Init(cfg Config) error {
	l, err := NewFromConfig(cfg)
	if err != nil {
		return err
	}
	if old := SetDefault(l); old != nil && old != l {
		return old.Close()
	}
	return nil
}

// Close flushes and closes the default logger.
// Call this function when your application shuts down to ensure logs are flushed.
func Close() error {
	return std.Load().Close()
}
