// Package runlog records one line per cz operation in an optional log file.
package runlog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/collatzlab/cz/internal/constants"
)

// EventType names the operation an event describes.
type EventType string

const (
	EventSearch EventType = "search"
	EventEval   EventType = "eval"
	EventDecode EventType = "decode"
	EventGrow   EventType = "grow"
	EventSeq    EventType = "seq"
	// EventError records a failed invocation.
	EventError EventType = "error"
)

const timeLayout = "2006-01-02 15:04:05"

// Event is a single logged operation.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Run       string    `json:"run"`
	Context   string    `json:"context,omitempty"`
}

// Logger appends events for one run. A Logger with no path discards events.
type Logger struct {
	path string
	run  string
	mu   sync.Mutex
}

// New returns a Logger writing to path and tagging events with run.
// An empty path yields a no-op Logger.
func New(path, run string) *Logger {
	if run == "" {
		run = NewRunID()
	}
	return &Logger{path: path, run: run}
}

// NewRunID returns a short random identifier for one cz invocation.
func NewRunID() string {
	return uuid.NewString()[:8]
}

// Enabled reports whether events are written anywhere.
func (l *Logger) Enabled() bool { return l != nil && l.path != "" }

// Path returns the log file path, empty when disabled.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Run returns the run ID stamped on every event.
func (l *Logger) Run() string {
	if l == nil {
		return ""
	}
	return l.run
}

// Log records an event of type t with the current time.
func (l *Logger) Log(t EventType, format string, args ...any) error {
	return l.LogEvent(Event{
		Timestamp: time.Now(),
		Type:      t,
		Run:       l.Run(),
		Context:   fmt.Sprintf(format, args...),
	})
}

// LogEvent appends e to the log file. Other cz processes are excluded for
// the duration of the write by an advisory lock next to the file.
func (l *Logger) LogEvent(e Event) error {
	if !l.Enabled() {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	lock, err := acquire(l.path)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatLogLine(e) + "\n"); err != nil {
		return fmt.Errorf("writing log line: %w", err)
	}
	return nil
}

func acquire(path string) (*flock.Flock, error) {
	lock := flock.New(path + constants.FileLockSuffix)
	ctx, cancel := context.WithTimeout(context.Background(), constants.LogLockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, constants.LogLockRetry)
	if err != nil {
		return nil, fmt.Errorf("acquiring log lock: %w", err)
	}
	if !locked {
		return nil, errors.New("timeout waiting for log lock")
	}
	return lock, nil
}

// formatLogLine renders e on one line.
// Format: 2026-03-14 09:26:53 [search] 1f0c2a9e stem=16 k=3 rows=4
func formatLogLine(e Event) string {
	detail := strings.Join(strings.Fields(e.Context), " ")
	if detail == "" {
		detail = string(e.Type)
	}
	run := e.Run
	if run == "" {
		run = "-"
	}
	return fmt.Sprintf("%s [%s] %s %s", e.Timestamp.Format(timeLayout), e.Type, run, detail)
}
