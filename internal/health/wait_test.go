package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWait_EventuallyReady(t *testing.T) {
	p := NewMockPinger()
	p.SetResults("u", false, false, true)

	var failed []int
	attempts, err := Wait(context.Background(), func(ctx context.Context) bool {
		return p.Ping(ctx, "u")
	}, WaitOptions{
		Interval:  time.Millisecond,
		Timeout:   time.Second,
		OnAttempt: func(attempt int, _ time.Duration) { failed = append(failed, attempt) },
	})
	if err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if len(failed) != 2 {
		t.Errorf("OnAttempt called %d times, want 2", len(failed))
	}
}

func TestWait_Timeout(t *testing.T) {
	attempts, err := Wait(context.Background(), func(context.Context) bool { return false }, WaitOptions{
		Interval: 5 * time.Millisecond,
		Timeout:  30 * time.Millisecond,
	})
	if !errors.Is(err, ErrNotReady) {
		t.Errorf("Wait error = %v, want ErrNotReady", err)
	}
	if attempts < 1 {
		t.Errorf("attempts = %d, want at least 1", attempts)
	}
}

func TestWait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Wait(ctx, func(context.Context) bool { return false }, WaitOptions{
		Interval: time.Millisecond,
		Timeout:  time.Minute,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wait error = %v, want context.Canceled", err)
	}
}

func TestMockPinger(t *testing.T) {
	p := NewMockPinger()
	p.Default = true
	p.SetResults("a", false, true)

	results := []bool{p.Ping(context.Background(), "a"), p.Ping(context.Background(), "a"), p.Ping(context.Background(), "a")}
	if results[0] || !results[1] || !results[2] {
		t.Errorf("results = %v, want [false true true]", results)
	}
	if !p.Ping(context.Background(), "other") {
		t.Error("unknown URL should return Default")
	}
	if p.CallCount("a") != 3 {
		t.Errorf("CallCount(a) = %d, want 3", p.CallCount("a"))
	}
}
