package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullConfig = `
enabled = false
level = "info"
formatter = "verbose"
theme = "flat"
color = "always"
components = ["level", "message"]
separator = ", "
buffer_size = 16

[foreground]
error = "#ff5555"

[background]
fatal = "#000000"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(fullConfig))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Enabled == nil || *cfg.Enabled {
		t.Errorf("enabled = %v", cfg.Enabled)
	}
	if cfg.Level != "info" || cfg.Formatter != "verbose" || cfg.Theme != "flat" || cfg.Color != "always" {
		t.Errorf("unexpected scalars: %+v", cfg)
	}
	if len(cfg.Components) != 2 || cfg.Components[1] != "message" {
		t.Errorf("components = %v", cfg.Components)
	}
	if cfg.Separator == nil || *cfg.Separator != ", " {
		t.Errorf("separator = %v", cfg.Separator)
	}
	if cfg.BufferSize != 16 || cfg.Foreground["error"] != "#ff5555" || cfg.Background["fatal"] != "#000000" {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	cases := map[string]struct {
		doc   string
		field string
	}{
		"unknown field": {`levels = ["info"]`, "levels"},
		"syntax":        {`level = `, "line 1"},
		"level":         {`level = "loud"`, "level"},
		"formatter":     {`formatter = "fancy"`, "formatter"},
		"theme":         {`theme = "neon"`, "theme"},
		"color":         {`color = "sometimes"`, "color"},
		"component":     {`components = ["colour"]`, "components"},
		"color key":     {"[foreground]\nloud = \"#ffffff\"", "foreground"},
		"color value":   {"[background]\nerror = \"red\"", "background"},
		"buffer size":   {`buffer_size = -1`, "buffer_size"},
	}
	for name, tc := range cases {
		_, err := ParseConfig([]byte(tc.doc))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: error = %v, want ErrInvalidConfig", name, err)
			continue
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Errorf("%s: error %q should mention %q", name, err, tc.field)
		}
	}
}

func TestConfigValidate_ZeroValue(t *testing.T) {
	if err := (Config{}).Validate(); err != nil {
		t.Fatalf("zero config should be valid: %v", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	defer discardOutput()()
	cfg, err := ParseConfig([]byte(fullConfig))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	l, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	defer l.Close()

	if l.Enabled() || l.Level() != InfoLevel || l.Formatter() != Verbose || l.separator != ", " {
		t.Errorf("unexpected logger settings: enabled=%v level=%s format=%q sep=%q",
			l.Enabled(), l.Level(), l.Format(), l.separator)
	}

	theme := l.Theme()
	if theme == nil {
		t.Fatal("color = always should attach a theme")
	}
	if theme.Components() != ComponentLevel|ComponentMessage {
		t.Errorf("components = %b", theme.Components())
	}
	if got := theme.Palette(ErrorLevel).Foreground; got != 0xFF5555 {
		t.Errorf("error foreground = %s, want the override", got)
	}
	if got := theme.Palette(InfoLevel).Foreground; got != 0x3498DB {
		t.Errorf("info foreground = %s, want the flat preset", got)
	}
	if got := theme.Palette(FatalLevel).Background; got != 0x000000 || !theme.Palette(FatalLevel).HasBackground {
		t.Errorf("fatal background = %s, want the override", got)
	}
}

func TestConfigTheme_ColorModes(t *testing.T) {
	defer discardOutput()()

	cases := map[string]struct {
		cfg     Config
		colored bool
	}{
		"never":         {Config{Theme: "classic", Color: "never"}, false},
		"auto no tty":   {Config{Theme: "classic"}, false},
		"always":        {Config{Theme: "classic", Color: "always"}, true},
		"always none":   {Config{Theme: "none", Color: "always"}, false},
		"override only": {Config{Color: "always", Foreground: map[string]string{"warn": "#ffaa00"}}, true},
	}
	for name, tc := range cases {
		theme, err := tc.cfg.theme()
		if err != nil {
			t.Fatalf("%s: theme() failed: %v", name, err)
		}
		if (theme != nil) != tc.colored {
			t.Errorf("%s: theme = %v, want colored=%v", name, theme, tc.colored)
		}
	}

	theme, _ := Config{Color: "always", Foreground: map[string]string{"warn": "#ffaa00"}}.theme()
	if p := theme.Palette(WarnLevel); p.Foreground != 0xFFAA00 || theme.Palette(InfoLevel).HasForeground {
		t.Errorf("override-only theme palettes: warn=%+v info=%+v", p, theme.Palette(InfoLevel))
	}
}

func TestConfigLevel_Environment(t *testing.T) {
	defer discardOutput()()

	t.Setenv("LOGGER_LEVEL", "error")
	l, err := NewFromConfig(Config{})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	defer l.Close()
	if l.Level() != ErrorLevel {
		t.Errorf("level = %s, want LOGGER_LEVEL", l.Level())
	}

	explicit, err := NewFromConfig(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	defer explicit.Close()
	if explicit.Level() != DebugLevel {
		t.Errorf("config level should win over LOGGER_LEVEL, got %s", explicit.Level())
	}

	t.Setenv("LOGGER_LEVEL", "loud")
	if _, err := NewFromConfig(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid LOGGER_LEVEL error = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logger.toml")
	if err := os.WriteFile(path, []byte("level = \"warn\"\nformatter = \"minimal\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Level != "warn" || cfg.Formatter != "minimal" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte(`theme = "neon"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidConfig) || !strings.Contains(err.Error(), bad) {
		t.Errorf("LoadConfig(bad) error = %v", err)
	}
}

func TestInit_ReplacesDefault(t *testing.T) {
	var stdoutBuf bytes.Buffer
	oldStdout := outStdout
	outStdout = &stdoutBuf
	defer func() { outStdout = oldStdout }()
	isolateDefault(t)

	sep := "+"
	if err := Init(Config{Level: "info", Formatter: "minimal", Separator: &sep}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Debug("hidden")
	Infoln("a", "b")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got := stdoutBuf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug should be filtered, got %q", got)
	}
	if !strings.HasPrefix(got, " INFO | config_test.go:") && !strings.HasPrefix(got, "<6> INFO | config_test.go:") {
		t.Errorf("unexpected line %q", got)
	}
	if !strings.HasSuffix(got, " > a+b\n") {
		t.Errorf("unexpected message %q", got)
	}
}
