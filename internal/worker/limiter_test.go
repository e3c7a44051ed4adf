package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_DefaultBurst(t *testing.T) {
	l := NewLimiter(10, -1)
	if l.burst != 5 {
		t.Errorf("expected default burst 5 for non-positive input, got %d", l.burst)
	}

	l2 := NewLimiter(10, 3)
	if l2.burst != 3 {
		t.Errorf("expected burst 3, got %d", l2.burst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	l := NewLimiter(100, 5)
	ctx := context.Background()

	if err := l.Wait(ctx, "https://example.com/pricing"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := l.Wait(ctx, "https://other.example.org/docs"); err != nil {
		t.Errorf("wait for second host failed: %v", err)
	}
}

func TestLimiter_WaitPerHost(t *testing.T) {
	// One token per host; second request on the same host must block.
	l := NewLimiter(0.1, 1)

	ctx := context.Background()
	if err := l.Wait(ctx, "https://slow.example.com/a"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	blocked, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(blocked, "https://slow.example.com/b"); err == nil {
		t.Errorf("expected second wait on same host to time out")
	}

	// A different host has its own bucket and proceeds immediately.
	if err := l.Wait(ctx, "https://fast.example.com/"); err != nil {
		t.Errorf("wait on separate host failed: %v", err)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	l := NewLimiter(100, 5)

	start := time.Now()
	if err := l.WaitWithDelay(context.Background(), "https://example.com", 50*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected at least 50ms elapsed, got %v", elapsed)
	}
}

func TestLimiter_WaitWithDelayCancelled(t *testing.T) {
	l := NewLimiter(100, 5)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.WaitWithDelay(ctx, "https://example.com", time.Second)
	if err == nil {
		t.Fatal("expected context error when delay outlives context")
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	l := NewLimiter(10, 5)
	if err := l.Wait(context.Background(), "://not-a-url"); err == nil {
		t.Error("expected error for unparsable URL")
	}
}
