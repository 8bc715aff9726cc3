package runlog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ReadEvents parses every well-formed line of the log at path.
// A missing file yields no events.
func ReadEvents(path string) ([]Event, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading log file: %w", err)
	}
	return ParseLogLines(string(content)), nil
}

// ParseLogLines is the inverse of formatLogLine. Malformed lines are skipped.
func ParseLogLines(content string) []Event {
	var events []Event
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		e, err := parseLogLine(line)
		if err != nil {
			continue
		}
		events = append(events, e)
	}
	return events
}

func parseLogLine(line string) (Event, error) {
	var e Event

	if len(line) < len(timeLayout)+1 {
		return e, errors.New("line too short")
	}
	ts, err := time.ParseInLocation(timeLayout, line[:len(timeLayout)], time.Local)
	if err != nil {
		return e, fmt.Errorf("parsing timestamp: %w", err)
	}
	e.Timestamp = ts

	rest := line[len(timeLayout)+1:]
	if !strings.HasPrefix(rest, "[") {
		return e, errors.New("missing event type")
	}
	typ, rest, ok := strings.Cut(rest[1:], "] ")
	if !ok || typ == "" {
		return e, errors.New("unclosed event type")
	}
	e.Type = EventType(typ)

	run, detail, _ := strings.Cut(rest, " ")
	if run == "" {
		return e, errors.New("missing run")
	}
	if run != "-" {
		e.Run = run
	}
	if detail != string(e.Type) {
		e.Context = detail
	}
	return e, nil
}

// TailEvents returns the last n events of the log at path.
func TailEvents(path string, n int) ([]Event, error) {
	events, err := ReadEvents(path)
	if err != nil {
		return nil, err
	}
	if n <= 0 || len(events) <= n {
		return events, nil
	}
	return events[len(events)-n:], nil
}

// Filter selects events. Zero fields match everything.
type Filter struct {
	Type  EventType
	Run   string // prefix match
	Since time.Time
}

// FilterEvents returns the events matching f, in order.
func FilterEvents(events []Event, f Filter) []Event {
	var result []Event
	for _, e := range events {
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.Run != "" && !strings.HasPrefix(e.Run, f.Run) {
			continue
		}
		if !f.Since.IsZero() && e.Timestamp.Before(f.Since) {
			continue
		}
		result = append(result, e)
	}
	return result
}
