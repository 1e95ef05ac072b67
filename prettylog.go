package prettylog

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Options configures InitWith. The zero value is usable: info level,
// match-all module filter, automatic color detection, local time, and the
// real process streams.
type Options struct {
	// Level is the minimum severity. LevelOff disables all output,
	// including panic reports.
	Level Level
	// Modules lists origin prefixes to keep. Empty matches every module.
	Modules []string
	// Color controls ANSI styling of the output.
	Color ColorMode
	// Location is the timezone used for timestamps. Nil means local time.
	Location *time.Location

	// Stdout and Stderr override the process streams. Tests use these; the
	// defaults are os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Now overrides the clock used for timestamps. Tests use this.
	Now func() time.Time
}

// sink bundles the pipeline with the pieces the handler and the panic hook
// share.
type sink struct {
	pipe   *pipeline
	format *formatter
	filter *moduleFilter
	level  Level
	logger *slog.Logger
}

func newSink(opts Options) *sink {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	styler := newStyler(opts.Color, stdout)
	format := newFormatter(styler, opts.Location, opts.Now)
	pipe := newPipeline(stdout, stderr)
	filter := newModuleFilter(opts.Modules)

	s := &sink{pipe: pipe, format: format, filter: filter, level: opts.Level}
	s.logger = slog.New(newHandler(pipe, format, filter, opts.Level))
	return s
}

var (
	initOnce sync.Once
	global   atomic.Pointer[sink]
)

// Init constructs the process-wide sink: it spawns the consumer goroutine,
// registers the sink's logger as the slog default, and installs the panic
// hook. The first call wins; later calls are no-ops regardless of their
// arguments. The sink is never torn down and lives until process exit, at
// which point still-queued lines may be lost.
//
// After Init, application code must not write to os.Stdout or os.Stderr
// directly, or the ordering guarantee is void.
func Init(level Level, modules ...string) {
	InitWith(Options{Level: level, Modules: modules})
}

// InitWith is Init with full Options.
func InitWith(opts Options) {
	initOnce.Do(func() {
		s := newSink(opts)
		global.Store(s)
		slog.SetDefault(s.logger)
		SetPanicHook(newPanicHook(s))
	})
}

func activeSink() *sink {
	return global.Load()
}

// Logger returns the sink's logger, or the slog default when Init has not
// run yet.
func Logger() *slog.Logger {
	if s := activeSink(); s != nil {
		return s.logger
	}
	return slog.Default()
}

// ModuleLogger returns the sink's logger pre-tagged with an origin module,
// so every record it emits is subject to prefix filtering under that name.
func ModuleLogger(name string) *slog.Logger {
	return Logger().With(slog.String(ModuleKey, name))
}

// Drain blocks until every line enqueued before the call has been written,
// or the timeout elapses. Producers never need it; it exists for short-lived
// programs that exit right after logging.
func Drain(timeout time.Duration) {
	if s := activeSink(); s != nil {
		s.pipe.await(timeout)
	}
}
