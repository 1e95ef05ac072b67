package prettylog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// ColorMode controls whether display lines carry ANSI escape codes.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps a configuration string to a ColorMode. The empty
// string means auto.
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on":
		return ColorAlways, nil
	case "never", "off":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("color mode: unrecognized value %q", value)
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

type styler struct {
	enabled bool
}

// newStyler resolves mode against the environment. Always and never are
// unconditional; auto styles only when NO_COLOR is unset and the standard
// output writer is a terminal.
func newStyler(mode ColorMode, stdout io.Writer) *styler {
	switch mode {
	case ColorAlways:
		return &styler{enabled: true}
	case ColorNever:
		return &styler{enabled: false}
	}
	if os.Getenv("NO_COLOR") != "" {
		return &styler{enabled: false}
	}
	return &styler{enabled: shouldColorize(stdout)}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// paint wraps value in the escape sequence for colors, or returns it
// untouched when styling is disabled.
func (s *styler) paint(colors text.Colors, value string) string {
	if !s.enabled || len(colors) == 0 || value == "" {
		return value
	}
	return colors.EscapeSeq() + value + text.EscapeReset
}
