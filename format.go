package prettylog

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

// timestampLayout renders `DD/MM/YYYY at HH:MM:SS.ss` with two-digit
// fractional seconds.
const timestampLayout = "02/01/2006 at 15:04:05.00"

// minTagWidth is the minimum rendered width of the bracketed level tag, so
// messages line up across levels.
const minTagWidth = 7

var (
	timestampColors = text.Colors{text.Faint}
	traceColors     = text.Colors{text.Faint}
	debugColors     = text.Colors{text.FgWhite}
	infoColors      = text.Colors{text.FgBlue}
	warnColors      = text.Colors{text.FgYellow}
	errorColors     = text.Colors{text.Bold, text.FgRed}
)

// formatter renders display lines. The clock and location are fixed at
// construction; every operation is pure and non-failing, which the panic
// path relies on.
type formatter struct {
	styler   *styler
	location *time.Location
	now      func() time.Time
}

func newFormatter(styler *styler, location *time.Location, now func() time.Time) *formatter {
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &formatter{styler: styler, location: location, now: now}
}

// line composes the full display line: dimmed timestamp, padded level tag,
// message. Nothing else is appended.
func (f *formatter) line(label, message string) string {
	return f.timestamp() + " " + f.levelTag(label) + " " + message
}

func (f *formatter) timestamp() string {
	return f.styler.paint(timestampColors, f.now().In(f.location).Format(timestampLayout))
}

// levelTag renders `[LABEL]` padded before styling so alignment survives
// colored output.
func (f *formatter) levelTag(label string) string {
	tag := fmt.Sprintf("%-*s", minTagWidth, "["+label+"]")
	return f.styler.paint(tagColors(label), tag)
}

func tagColors(label string) text.Colors {
	switch label {
	case "TRACE":
		return traceColors
	case "DEBUG":
		return debugColors
	case "INFO":
		return infoColors
	case "WARN":
		return warnColors
	default:
		// ERROR, PANIC, and anything unrecognized.
		return errorColors
	}
}
