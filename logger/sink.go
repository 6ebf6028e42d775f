package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

const defaultBufferSize = 1024

// errorBufferSize bounds the write errors waiting for the error handler.
// Errors beyond it are dropped.
const errorBufferSize = 64

// record is one rendered line, or a flush barrier when done is set.
type record struct {
	level Level
	text  string
	done  chan struct{}
}

// sink owns the single goroutine that writes rendered lines. Lines are written
// in the order they were handed off, one Write call per line.
type sink struct {
	mu     sync.RWMutex
	closed bool
	queue  chan record
	done   chan struct{}

	out     io.Writer
	file    *os.File
	syslog  bool
	onError func(error)

	// errs feeds onError on its own goroutine; the writer never waits on it.
	errs    chan error
	errDone chan struct{}
}

func newSink(out io.Writer, file *os.File, syslog bool, size int, onError func(error)) *sink {
	if size <= 0 {
		size = defaultBufferSize
	}
	if onError == nil {
		onError = reportWriteError
	}
	s := &sink{
		queue:   make(chan record, size),
		done:    make(chan struct{}),
		out:     out,
		file:    file,
		syslog:  syslog,
		onError: onError,
		errs:    make(chan error, errorBufferSize),
		errDone: make(chan struct{}),
	}
	go s.run()
	go s.reportErrors()
	return s
}

func reportWriteError(err error) {
	fmt.Fprintf(outStderr, "logger: write failed: %v\n", err)
}

func (s *sink) reportErrors() {
	defer close(s.errDone)
	for err := range s.errs {
		s.onError(err)
	}
}

// fail hands err to the error goroutine, dropping it when the backlog is full.
func (s *sink) fail(err error) {
	select {
	case s.errs <- err:
	default:
	}
}

func (s *sink) run() {
	defer close(s.done)
	defer close(s.errs)
	for r := range s.queue {
		if r.done != nil {
			close(r.done)
			continue
		}
		s.write(r)
	}
}

func (s *sink) write(r record) {
	var w io.Writer = s.out
	if s.syslog {
		w = &syslogPrefixWriter{w: s.out, prefix: syslogPrefixForLevel(r.level)}
	}
	if w != nil {
		if _, err := io.WriteString(w, r.text); err != nil {
			s.fail(err)
		}
	}
	if s.file != nil {
		if _, err := (&plainWriter{w: s.file}).Write([]byte(r.text)); err != nil {
			s.fail(err)
		}
	}
}

// submit hands r to the writer goroutine. It blocks while the queue is full
// and reports false once the sink is closed.
func (s *sink) submit(r record) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	s.queue <- r
	return true
}

// flush waits until every record submitted before the call has been written.
func (s *sink) flush(ctx context.Context) error {
	barrier := make(chan struct{})
	if !s.submit(record{done: barrier}) {
		return nil
	}
	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close drains the queue, stops the writer and closes the owned file.
func (s *sink) close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
	<-s.errDone
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}
