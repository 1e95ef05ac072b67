// Package prettylog is a minimal, colorized log sink for log/slog.
//
// Init registers the sink as the slog default handler and spawns a single
// consumer goroutine that owns stdout and stderr for the remainder of the
// process. Producer goroutines hand fully formatted lines to the consumer
// through a queue and never block on I/O, while the single consumer keeps
// output ordered exactly by arrival, across both streams. Init also installs
// a panic hook so uncaught panics are reported through the same pipeline.
//
// Once Init has run, application code must not write to os.Stdout or
// os.Stderr directly; doing so voids the ordering guarantee.
package prettylog
