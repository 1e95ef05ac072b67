package prettylog

import (
	"sync"
	"time"
)

// PanicFallbackMessage is reported when a panic payload carries no string.
const PanicFallbackMessage = "A panic occurred! Exiting..."

// panicFlushTimeout bounds how long the default hook waits for the consumer
// to drain the report before the panic continues unwinding.
const panicFlushTimeout = 2 * time.Second

var (
	panicHookMu sync.Mutex
	panicHook   func(any)
)

// SetPanicHook installs the process-wide hook invoked by HandlePanic with
// the recovered value. The last writer wins and no chaining is performed;
// callers wanting a custom hook must install it after Init, or call the
// replaced hook themselves.
func SetPanicHook(hook func(any)) {
	panicHookMu.Lock()
	panicHook = hook
	panicHookMu.Unlock()
}

func currentPanicHook() func(any) {
	panicHookMu.Lock()
	defer panicHookMu.Unlock()
	return panicHook
}

// HandlePanic recovers a panic, routes it through the installed hook, and
// re-raises it so crash semantics (stack trace, exit status) are preserved.
// Use it as a deferred call at goroutine entry points.
func HandlePanic() {
	value := recover()
	if value == nil {
		return
	}
	if hook := currentPanicHook(); hook != nil {
		hook(value)
	}
	panic(value)
}

// Go runs fn on a new goroutine with panic capture installed.
func Go(fn func()) {
	go func() {
		defer HandlePanic()
		fn()
	}()
}

// newPanicHook builds the default hook for a sink: format the payload under
// the synthetic PANIC tag, styled like an error, and enqueue it to stderr.
// The module filter does not apply; panic reports are never filtered. A
// severity of Off suppresses the report entirely. Everything here is pure
// and non-failing, so the hook can never recurse.
func newPanicHook(s *sink) func(any) {
	return func(value any) {
		if s.level == LevelOff {
			return
		}
		s.pipe.enqueue(Stderr, s.format.line(panicLabel, panicMessage(value)))
		s.pipe.await(panicFlushTimeout)
	}
}

func panicMessage(value any) string {
	if message, ok := value.(string); ok {
		return message
	}
	return PanicFallbackMessage
}
