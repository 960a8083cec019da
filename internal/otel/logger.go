package otel

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger serializes events as JSONL. Emit writes synchronously: tagsift
// handles one event at a time, so there is no drain goroutine to coordinate.
// The mutex only guards against item-source commands emitting from their own
// goroutines.
type Logger struct {
	mu        sync.Mutex
	w         io.Writer
	buf       *RingBuffer
	sessionID string
	dropped   uint64
	closed    bool
}

// NewLogger creates a Logger writing JSONL to w.
func NewLogger(w io.Writer) *Logger {
	var sid [8]byte
	_, _ = rand.Read(sid[:])
	return &Logger{
		w:         w,
		sessionID: fmt.Sprintf("%x", sid[:]),
	}
}

// NewNullLogger creates a Logger that discards output. Attach a RingBuffer to
// keep events for the debug overlay without writing a file.
func NewNullLogger() *Logger {
	return NewLogger(io.Discard)
}

// Emit writes an event (and pushes it to the ring buffer if attached).
// Sets Time (if zero) and SessionID. A nil Logger is a no-op, so components
// can hold an optional *Logger.
func (l *Logger) Emit(e Event) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		l.dropped++
		return
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	e.SessionID = l.sessionID

	if l.buf != nil {
		l.buf.Push(e)
	}

	data, err := json.Marshal(e)
	if err != nil {
		l.dropped++
		return
	}
	data = append(data, '\n')
	if _, err := l.w.Write(data); err != nil {
		l.dropped++
	}
}

// Info emits an info-level event.
func (l *Logger) Info(kind EventKind, comp string, msg string) {
	l.Emit(Event{Level: LevelInfo, Kind: kind, Comp: comp, Msg: msg})
}

// Warn emits a warn-level event.
func (l *Logger) Warn(kind EventKind, comp string, msg string) {
	l.Emit(Event{Level: LevelWarn, Kind: kind, Comp: comp, Msg: msg})
}

// Error emits an error-level event. Nil err is safe (logged as empty string).
func (l *Logger) Error(kind EventKind, comp string, err error) {
	errStr := ""
	if err != nil {
		errStr = err.Error()
	}
	l.Emit(Event{Level: LevelError, Kind: kind, Comp: comp, Err: errStr})
}

// SetRingBuffer attaches a ring buffer for live inspection.
func (l *Logger) SetRingBuffer(buf *RingBuffer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = buf
}

// SessionID returns the random id stamped on every event.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Dropped returns the number of events lost to encode or write failures, or
// emitted after Close.
func (l *Logger) Dropped() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Close stops accepting events and closes the writer if it is an io.Closer.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	if c, ok := l.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
