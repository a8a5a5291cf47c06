// Package audit provides structured event logging for container lifecycle events.
// Events are stored as JSON Lines (JSONL) files, one per container.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a lifecycle event.
type EventType string

const (
	EventBootstrap EventType = "bootstrap"
	EventPatch     EventType = "patch"
	EventDeploy    EventType = "deploy"
	EventReady     EventType = "ready"
	EventError     EventType = "error"
)

// Event represents a single audit log entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Container string    `json:"container"`
	RunID     string    `json:"run_id,omitempty"`
	Details   string    `json:"details,omitempty"`
}

// NewRunID returns an identifier grouping the events of one bootstrap run.
func NewRunID() string {
	return uuid.NewString()
}

// Logger writes and reads audit events for containers.
// Events are stored in {dir}/{name}.events.jsonl.
type Logger struct {
	dir string
}

// NewLogger creates a new audit logger rooted at dir.
func NewLogger(dir string) *Logger {
	return &Logger{dir: dir}
}

// eventPath returns the path to the JSONL event log for a container.
func (l *Logger) eventPath(container string) string {
	return filepath.Join(l.dir, container+".events.jsonl")
}

// Log appends an event to the container's audit log.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	path := l.eventPath(event.Container)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, container, runID, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Container: container,
		RunID:     runID,
		Details:   details,
	})
}

// Events reads all events for a container in chronological order.
func (l *Logger) Events(container string) ([]Event, error) {
	path := l.eventPath(container)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading audit log: %w", err)
	}

	return events, nil
}

// Run returns the events recorded under runID.
func (l *Logger) Run(container, runID string) ([]Event, error) {
	events, err := l.Events(container)
	if err != nil {
		return nil, err
	}
	var out []Event
	for _, e := range events {
		if e.RunID == runID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Remove deletes the audit log for a container.
func (l *Logger) Remove(container string) error {
	path := l.eventPath(container)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
