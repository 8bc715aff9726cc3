package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestFormatLogLine(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "with context",
			event: Event{Timestamp: ts, Type: EventSearch, Run: "1f0c2a9e", Context: "stem=16 k=3 rows=4"},
			want:  "2026-03-14 09:26:53 [search] 1f0c2a9e stem=16 k=3 rows=4",
		},
		{
			name:  "empty context",
			event: Event{Timestamp: ts, Type: EventSeq, Run: "abc"},
			want:  "2026-03-14 09:26:53 [seq] abc seq",
		},
		{
			name:  "no run",
			event: Event{Timestamp: ts, Type: EventError, Context: "decode: node must be positive"},
			want:  "2026-03-14 09:26:53 [error] - decode: node must be positive",
		},
		{
			name:  "newlines collapse",
			event: Event{Timestamp: ts, Type: EventEval, Run: "r1", Context: "line one\n  line two"},
			want:  "2026-03-14 09:26:53 [eval] r1 line one line two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLogLine(tt.event); got != tt.want {
				t.Errorf("formatLogLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLogLines_RoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	events := []Event{
		{Timestamp: ts, Type: EventSearch, Run: "aaaa1111", Context: "stem=16 k=3 rows=4"},
		{Timestamp: ts.Add(time.Minute), Type: EventDecode, Run: "bbbb2222", Context: "node=7"},
		{Timestamp: ts.Add(2 * time.Minute), Type: EventGrow, Run: "cccc3333"},
	}

	var b strings.Builder
	for _, e := range events {
		b.WriteString(formatLogLine(e) + "\n")
	}
	b.WriteString("garbage line\n\n")

	got := ParseLogLines(b.String())
	if len(got) != len(events) {
		t.Fatalf("parsed %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if !got[i].Timestamp.Equal(events[i].Timestamp) {
			t.Errorf("event %d timestamp = %v, want %v", i, got[i].Timestamp, events[i].Timestamp)
		}
		if got[i].Type != events[i].Type || got[i].Run != events[i].Run || got[i].Context != events[i].Context {
			t.Errorf("event %d = %+v, want %+v", i, got[i], events[i])
		}
	}
}

func TestParseLogLine_Malformed(t *testing.T) {
	for _, line := range []string{
		"short",
		"2026-13-40 99:99:99 [search] r x",
		"2026-01-02 03:04:05 search r x",
		"2026-01-02 03:04:05 [search r x",
		"2026-01-02 03:04:05 [] r x",
		"2026-01-02 03:04:05 [search] ",
	} {
		if _, err := parseLogLine(line); err == nil {
			t.Errorf("parseLogLine(%q) should fail", line)
		}
	}
}

func TestLogger_WritesAndReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cz.log")
	l := New(path, "run00001")

	if !l.Enabled() {
		t.Fatal("logger with a path should be enabled")
	}
	if err := l.Log(EventSearch, "stem=%d k=%d", 16, 3); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if err := l.Log(EventError, "bad input"); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	events, err := ReadEvents(path)
	if err != nil {
		t.Fatalf("ReadEvents() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Context != "stem=16 k=3" || events[0].Run != "run00001" {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].Type != EventError {
		t.Errorf("second event type = %q", events[1].Type)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("log mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestLogger_Disabled(t *testing.T) {
	l := New("", "")
	if l.Enabled() {
		t.Fatal("logger without a path should be disabled")
	}
	if l.Run() == "" {
		t.Error("run ID should be generated")
	}
	if err := l.Log(EventSeq, "n=%d", 6); err != nil {
		t.Errorf("disabled Log() error = %v", err)
	}

	var nilLogger *Logger
	if err := nilLogger.Log(EventSeq, "n=6"); err != nil {
		t.Errorf("nil Log() error = %v", err)
	}
}

func TestLogger_ConcurrentWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cz.log")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l := New(path, "")
			for j := 0; j < 10; j++ {
				if err := l.Log(EventEval, "writer=%d n=%d", i, j); err != nil {
					t.Errorf("Log() error = %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	events, err := ReadEvents(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 80 {
		t.Errorf("got %d events, want 80", len(events))
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if len(a) != 8 {
		t.Errorf("run ID %q should have 8 characters", a)
	}
	if a == b {
		t.Error("run IDs should differ")
	}
}

func TestReadEvents_MissingFile(t *testing.T) {
	events, err := ReadEvents(filepath.Join(t.TempDir(), "none.log"))
	if err != nil {
		t.Fatalf("ReadEvents() error = %v", err)
	}
	if events != nil {
		t.Errorf("events = %v, want nil", events)
	}
}

func TestTailAndFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cz.log")
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)

	l := New(path, "")
	for i, typ := range []EventType{EventSearch, EventEval, EventSearch, EventDecode} {
		e := Event{Timestamp: base.Add(time.Duration(i) * time.Hour), Type: typ, Run: "run" + string(rune('a'+i)), Context: "i"}
		if err := l.LogEvent(e); err != nil {
			t.Fatal(err)
		}
	}

	tail, err := TailEvents(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tail) != 2 || tail[0].Run != "runc" || tail[1].Run != "rund" {
		t.Errorf("TailEvents(2) = %+v", tail)
	}

	all, _ := TailEvents(path, 0)
	if len(all) != 4 {
		t.Fatalf("TailEvents(0) returned %d events, want 4", len(all))
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"none", Filter{}, 4},
		{"by type", Filter{Type: EventSearch}, 2},
		{"by run prefix", Filter{Run: "runb"}, 1},
		{"since", Filter{Since: base.Add(90 * time.Minute)}, 2},
		{"combined", Filter{Type: EventSearch, Since: base.Add(time.Hour)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterEvents(all, tt.filter); len(got) != tt.want {
				t.Errorf("FilterEvents() returned %d events, want %d", len(got), tt.want)
			}
		})
	}
}
