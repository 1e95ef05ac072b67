package prettylog

import (
	"io"
	"sync"
	"time"
)

// entry is one queued write: the target stream and a fully formatted display
// line. An entry with a non-nil barrier produces no output; the consumer
// closes the channel when it reaches it, which is how await synchronizes.
type entry struct {
	stream  Stream
	line    string
	barrier chan struct{}
}

type flusher interface {
	Flush() error
}

// pipeline is the multi-producer single-consumer queue behind the sink.
// Producers append under a short mutex section and return immediately; the
// lone consumer goroutine exclusively owns both writers and performs every
// write, so output order is exactly arrival order at the queue, across both
// streams.
type pipeline struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []entry
	closed bool
	done   chan struct{}

	stdout io.Writer
	stderr io.Writer
}

// newPipeline starts the consumer goroutine. The writers are owned by that
// goroutine from this point on.
func newPipeline(stdout, stderr io.Writer) *pipeline {
	p := &pipeline{stdout: stdout, stderr: stderr, done: make(chan struct{})}
	p.cond = sync.NewCond(&p.mu)
	go p.run()
	return p
}

// enqueue hands one line to the consumer. Enqueues after close are dropped
// silently; delivery failure is never reported to logging callers.
func (p *pipeline) enqueue(stream Stream, line string) {
	p.push(entry{stream: stream, line: line})
}

func (p *pipeline) push(e entry) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.queue = append(p.queue, e)
	p.cond.Signal()
	p.mu.Unlock()
	return true
}

// await blocks until the consumer has passed every entry enqueued before the
// call, or the timeout elapses. Best effort: the panic hook uses it so the
// formatted report lands before the panic keeps unwinding.
func (p *pipeline) await(timeout time.Duration) {
	barrier := make(chan struct{})
	if !p.push(entry{barrier: barrier}) {
		return
	}
	select {
	case <-barrier:
	case <-time.After(timeout):
	}
}

func (p *pipeline) run() {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			// Closed and drained.
			p.mu.Unlock()
			close(p.done)
			return
		}
		e := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.write(e)
	}
}

// write delivers one entry. Write and flush errors are swallowed per line so
// a broken stream neither stalls nor terminates the loop.
func (p *pipeline) write(e entry) {
	if e.barrier != nil {
		close(e.barrier)
		return
	}
	writer := p.stdout
	if e.stream == Stderr {
		writer = p.stderr
	}
	if writer == nil {
		return
	}
	_, _ = io.WriteString(writer, e.line+"\n")
	if f, ok := writer.(flusher); ok {
		_ = f.Flush()
	}
}

// close drains the queue and stops the consumer. The process-wide sink never
// calls it; it exists so tests and embedded pipelines can terminate cleanly.
func (p *pipeline) close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	<-p.done
}
