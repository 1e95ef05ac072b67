package prettylog

import (
	"strings"
	"testing"
	"time"
)

// triggerPanic raises value through the deferred capture point and verifies
// the panic is re-raised after the hook runs.
func triggerPanic(t *testing.T, value any) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected the panic to be re-raised")
		}
	}()
	defer HandlePanic()
	panic(value)
}

func TestPanicHookWritesReport(t *testing.T) {
	rec := &lineRecorder{}
	// The module filter must not apply to panic reports.
	s := newTestSink(t, rec, Options{Level: LevelInfo, Modules: []string{"app"}})
	SetPanicHook(newPanicHook(s))
	t.Cleanup(func() { SetPanicHook(nil) })

	triggerPanic(t, "boom")

	lines := rec.snapshot()
	if len(lines) != 1 {
		t.Fatalf("expected exactly one report, got %v", lines)
	}
	want := "err|30/08/2026 at 13:05:07.12 [PANIC] boom"
	if lines[0] != want {
		t.Errorf("report = %q, want %q", lines[0], want)
	}
}

func TestPanicHookSilentWhenOff(t *testing.T) {
	rec := &lineRecorder{}
	s := newTestSink(t, rec, Options{Level: LevelOff})
	SetPanicHook(newPanicHook(s))
	t.Cleanup(func() { SetPanicHook(nil) })

	triggerPanic(t, "boom")

	if lines := rec.snapshot(); len(lines) != 0 {
		t.Fatalf("expected no report with logging off, got %v", lines)
	}
}

func TestPanicHookFallbackForNonStringPayload(t *testing.T) {
	rec := &lineRecorder{}
	s := newTestSink(t, rec, Options{Level: LevelInfo})
	SetPanicHook(newPanicHook(s))
	t.Cleanup(func() { SetPanicHook(nil) })

	triggerPanic(t, 42)

	lines := rec.snapshot()
	if len(lines) != 1 || !strings.Contains(lines[0], PanicFallbackMessage) {
		t.Fatalf("expected fallback message, got %v", lines)
	}
}

func TestSetPanicHookLastWriterWins(t *testing.T) {
	rec := &lineRecorder{}
	s := newTestSink(t, rec, Options{Level: LevelInfo})
	SetPanicHook(newPanicHook(s))

	var captured any
	SetPanicHook(func(value any) { captured = value })
	t.Cleanup(func() { SetPanicHook(nil) })

	triggerPanic(t, "custom")

	if captured != "custom" {
		t.Errorf("replacement hook saw %v", captured)
	}
	if lines := rec.snapshot(); len(lines) != 0 {
		t.Errorf("replaced hook still wrote %v", lines)
	}
}

func TestHandlePanicWithoutPanicIsNoOp(t *testing.T) {
	done := false
	func() {
		defer HandlePanic()
		done = true
	}()
	if !done {
		t.Fatalf("function body did not run")
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Go never ran the function")
	}
}
