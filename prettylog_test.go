package prettylog

import (
	"strings"
	"testing"
	"time"
)

// The process-wide sink can be constructed once, so the whole first-wins
// contract is exercised in a single test.
func TestInitFirstCallWins(t *testing.T) {
	first := &lineRecorder{}
	InitWith(Options{
		Level:    LevelWarn,
		Modules:  []string{"app"},
		Color:    ColorNever,
		Location: time.UTC,
		Now:      fixedClock,
		Stdout:   first.writer("out|"),
		Stderr:   first.writer("err|"),
	})

	second := &lineRecorder{}
	InitWith(Options{
		Level:  LevelTrace,
		Stdout: second.writer("out|"),
		Stderr: second.writer("err|"),
	})
	t.Cleanup(func() { SetPanicHook(nil) })

	Logger().Info("below the first call's threshold")
	ModuleLogger("other").Error("outside the first call's filter")
	ModuleLogger("app::db").Warn("disk pressure")

	Drain(5 * time.Second)

	lines := first.snapshot()
	if len(lines) != 1 {
		t.Fatalf("expected one line from the first sink, got %v", lines)
	}
	if !strings.HasPrefix(lines[0], "out|") || !strings.Contains(lines[0], "disk pressure") {
		t.Errorf("unexpected line %q", lines[0])
	}
	if extra := second.snapshot(); len(extra) != 0 {
		t.Errorf("second Init must be a no-op, but its sink wrote %v", extra)
	}

	// Init also installs the default panic hook against the first sink.
	triggerPanic(t, "boom")
	lines = first.snapshot()
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "err|") || !strings.Contains(lines[1], "[PANIC] boom") {
		t.Errorf("panic report missing from the singleton sink: %v", lines)
	}
}
