package prettylog

import (
	"context"
	"log/slog"
)

// ModuleKey is the attribute key that tags a record with its origin module
// for prefix filtering, e.g. slog.String(ModuleKey, "app::db").
const ModuleKey = "module"

// handler is the slog.Handler facade over the pipeline. It applies the
// module filter, renders the display line, and enqueues it. Attributes other
// than the module tag are not rendered; this sink emits plain lines, not
// structured fields.
type handler struct {
	pipe   *pipeline
	format *formatter
	filter *moduleFilter
	level  Level

	module string
	groups []string
}

func newHandler(pipe *pipeline, format *formatter, filter *moduleFilter, level Level) *handler {
	return &handler{pipe: pipe, format: format, filter: filter, level: level}
}

// Enabled applies the minimum severity before Handle runs. Off disables
// every level.
func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.level == LevelOff {
		return false
	}
	return level >= h.level.slogLevel()
}

// Handle formats and enqueues the record. Records from origins outside the
// module filter are dropped without a trace. The return value is always nil:
// logging must never propagate an error or panic into caller code.
func (h *handler) Handle(_ context.Context, record slog.Record) error {
	if h.level == LevelOff || record.Level < h.level.slogLevel() {
		return nil
	}

	module := h.module
	if len(h.groups) == 0 {
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == ModuleKey {
				module = attr.Value.Resolve().String()
				return false
			}
			return true
		})
	}
	if !h.filter.enabled(module) {
		return nil
	}

	level := levelForRecord(record.Level)
	h.pipe.enqueue(level.Stream(), h.format.line(level.Label(), record.Message))
	return nil
}

// WithAttrs records the module tag when one is present at the top level.
// Later tags override earlier ones, matching call-site precedence in Handle.
func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	if len(h.groups) > 0 {
		return clone
	}
	for _, attr := range attrs {
		if attr.Key == ModuleKey {
			clone.module = attr.Value.Resolve().String()
		}
	}
	return clone
}

// WithGroup opens a group scope. Group-qualified attributes never act as the
// module tag.
func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *handler) clone() *handler {
	clone := &handler{
		pipe:   h.pipe,
		format: h.format,
		filter: h.filter,
		level:  h.level,
		module: h.module,
	}
	if len(h.groups) > 0 {
		clone.groups = make([]string, len(h.groups))
		copy(clone.groups, h.groups)
	}
	return clone
}
