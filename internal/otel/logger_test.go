package otel

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestEmitWritesValidJSONL(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{Kind: KindTagToggle, Level: LevelInfo, Comp: "session", Tag: "peynir", Set: "marked", On: true})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := map[string]any{
		"kind":  "tag.toggle",
		"level": "info",
		"comp":  "session",
		"tag":   "peynir",
		"set":   "marked",
		"on":    true,
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s=%v, want %v", k, decoded[k], v)
		}
	}
}

func TestEmitSetsTimeAndSessionID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	before := time.Now()
	l.Emit(Event{Kind: KindStartup})
	after := time.Now()

	var ev Event
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Time.Before(before) || ev.Time.After(after) {
		t.Errorf("time %v not in [%v, %v]", ev.Time, before, after)
	}
	if len(ev.SessionID) != 16 {
		t.Errorf("session_id should be 16 hex chars, got %d: %q", len(ev.SessionID), ev.SessionID)
	}
	if ev.SessionID != l.SessionID() {
		t.Errorf("session_id=%q, logger reports %q", ev.SessionID, l.SessionID())
	}
}

func TestDurToMs(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{Kind: KindSourceLoad, Dur: 1500 * time.Millisecond})

	var decoded map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	durMs, ok := decoded["dur_ms"].(float64)
	if !ok {
		t.Fatal("dur_ms not present or not float64")
	}
	if durMs != 1500 {
		t.Errorf("expected dur_ms=1500, got %v", durMs)
	}
}

func TestHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Info(KindStartup, "main", "hello")
	l.Warn(KindSourceError, "fetch", "slow")
	l.Error(KindSourceError, "fetch", errors.New("boom"))
	l.Error(KindError, "main", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	var ev Event
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Level != LevelError || ev.Err != "boom" {
		t.Errorf("got level=%q err=%q", ev.Level, ev.Err)
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Emit(Event{Kind: KindTagReset})
	l.Info(KindStartup, "main", "ignored")
}

func TestEmitAfterCloseDropped(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	l.Emit(Event{Kind: KindShutdown})
	if buf.Len() != 0 {
		t.Errorf("expected no output after close, got %q", buf.String())
	}
	if l.Dropped() != 1 {
		t.Errorf("dropped=%d, want 1", l.Dropped())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorCountsDropped(t *testing.T) {
	l := NewLogger(failWriter{})
	l.Emit(Event{Kind: KindTagToggle})
	l.Emit(Event{Kind: KindTagToggle})
	if l.Dropped() != 2 {
		t.Errorf("dropped=%d, want 2", l.Dropped())
	}
}

func TestRingBufferWithLogger(t *testing.T) {
	r := NewRingBuffer(16)
	l := NewNullLogger()
	l.SetRingBuffer(r)

	l.Emit(Event{Kind: KindStartup, Msg: "hello"})
	l.Emit(Event{Kind: KindShutdown, Msg: "bye"})

	snap := r.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 events in ring buffer, got %d", len(snap))
	}
	if snap[0].SessionID == "" {
		t.Error("ring buffer events should carry the session id")
	}
}

func TestConcurrentEmit(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				l.Emit(Event{Kind: KindSourceLoad, Count: j})
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 200 {
		t.Fatalf("expected 200 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Fatalf("line %d is not valid JSON: %q", i, line)
		}
	}
}

func TestTraceFlag(t *testing.T) {
	prev := TraceEnabled()
	defer setTraceEnabled(prev)

	setTraceEnabled(true)
	if !TraceEnabled() {
		t.Error("expected trace enabled")
	}
	setTraceEnabled(false)
	if TraceEnabled() {
		t.Error("expected trace disabled")
	}
}
