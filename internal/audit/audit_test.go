package audit

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLogger_LogAndEvents(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)
	runID := NewRunID()

	// Log some events
	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventBootstrap, Container: "shop", RunID: runID, Details: "flavor=glassfish"},
		{Timestamp: now.Add(time.Second), Type: EventPatch, Container: "shop", RunID: runID, Details: "2 of 4 rules applied"},
		{Timestamp: now.Add(2 * time.Second), Type: EventDeploy, Container: "shop", RunID: runID, Details: "berth-cpc.war"},
		{Timestamp: now.Add(3 * time.Second), Type: EventReady, Container: "shop"},
	}

	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	// Read them back
	result, err := logger.Events("shop")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}

	for i, e := range result {
		if e.Type != events[i].Type {
			t.Errorf("event %d: type = %q, want %q", i, e.Type, events[i].Type)
		}
		if e.Container != events[i].Container {
			t.Errorf("event %d: container = %q, want %q", i, e.Container, events[i].Container)
		}
		if e.Details != events[i].Details {
			t.Errorf("event %d: details = %q, want %q", i, e.Details, events[i].Details)
		}
		if e.RunID != events[i].RunID {
			t.Errorf("event %d: run id = %q, want %q", i, e.RunID, events[i].RunID)
		}
	}
}

func TestLogger_EventsEmpty(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	result, err := logger.Events("nonexistent")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != 0 {
		t.Errorf("got %d events, want 0", len(result))
	}
}

func TestLogger_LogEvent(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	if err := logger.LogEvent(EventBootstrap, "my-container", "run-1", "flavor=weblogic"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := logger.Events("my-container")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e := events[0]
	if e.Type != EventBootstrap {
		t.Errorf("type = %q, want %q", e.Type, EventBootstrap)
	}
	if e.Container != "my-container" {
		t.Errorf("container = %q, want %q", e.Container, "my-container")
	}
	if e.Details != "flavor=weblogic" {
		t.Errorf("details = %q, want %q", e.Details, "flavor=weblogic")
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp should be set automatically")
	}
}

func TestLogger_Run(t *testing.T) {
	logger := NewLogger(t.TempDir())
	first, second := NewRunID(), NewRunID()

	logger.LogEvent(EventBootstrap, "shop", first, "")
	logger.LogEvent(EventError, "shop", first, "exit code 1")
	logger.LogEvent(EventBootstrap, "shop", second, "")

	events, err := logger.Run("shop", first)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[1].Type != EventError {
		t.Errorf("type = %q, want %q", events[1].Type, EventError)
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Error("run ids should be unique")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("run id %q is not a UUID: %v", a, err)
	}
}

func TestLogger_Remove(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	logger.LogEvent(EventBootstrap, "removable", "", "")

	if err := logger.Remove("removable"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	events, err := logger.Events("removable")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after remove, want 0", len(events))
	}
}

func TestLogger_RemoveNonexistent(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	// Should not error
	if err := logger.Remove("nonexistent"); err != nil {
		t.Errorf("Remove should not error for nonexistent: %v", err)
	}
}

func TestLogger_EventOrder(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	base := time.Now()
	for i := 0; i < 5; i++ {
		logger.Log(Event{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Type:      EventReady,
			Container: "order-test",
			Details:   string(rune('A' + i)),
		})
	}

	events, _ := logger.Events("order-test")
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5", len(events))
	}

	// Events should be in chronological order (append-only)
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Errorf("event %d timestamp before event %d", i, i-1)
		}
	}
}
