package logger

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is a 24-bit RGB value in 0xRRGGBB form.
type Color uint32

// RGB splits the color into its red, green and blue bytes.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// ParseColor parses a hex color such as "#268bd2", "268bd2" or "#fff".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return 0, errors.Wrapf(err, "logger: invalid color %q", s)
	}
	r, g, b := parsed.RGB255()
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
}
