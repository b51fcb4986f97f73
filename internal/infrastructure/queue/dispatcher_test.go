package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/core/ports"
)

type recordingMailer struct {
	mu       sync.Mutex
	sent     []ports.Notification
	attempts int
	err      error
	signal   chan struct{}
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{signal: make(chan struct{}, 16)}
}

func (m *recordingMailer) Send(_ context.Context, n ports.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	err := m.err
	if err == nil {
		m.sent = append(m.sent, n)
	}
	m.signal <- struct{}{}
	return err
}

// waitAttempts blocks until the mailer has seen n delivery attempts.
func (m *recordingMailer) waitAttempts(t *testing.T, n int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		m.mu.Lock()
		seen := m.attempts
		m.mu.Unlock()
		if seen >= n {
			return
		}
		select {
		case <-m.signal:
		case <-deadline:
			t.Fatalf("timed out waiting for %d attempts, saw %d", n, seen)
		}
	}
}

func TestDispatcher_DeliversEnqueued(t *testing.T) {
	mailer := newRecordingMailer()
	d := NewDispatcher(mailer, 2, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.Notification{To: "a@example.com", Subject: "one"})
	d.Enqueue(ports.Notification{To: "b@example.com", Subject: "two"})
	mailer.waitAttempts(t, 2)

	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(mailer.sent))
	}
}

func TestDispatcher_ShardingIsDeterministic(t *testing.T) {
	d := NewDispatcher(newRecordingMailer(), 4, zerolog.Nop())

	first := shardFor("alice@example.com", len(d.workers))
	for i := 0; i < 10; i++ {
		if got := shardFor("alice@example.com", len(d.workers)); got != first {
			t.Fatalf("sharding must be deterministic: %d != %d", got, first)
		}
	}
}

func TestDispatcher_DeliveryFailureDoesNotStopWorker(t *testing.T) {
	mailer := newRecordingMailer()
	mailer.err = errors.New("smtp down")
	d := NewDispatcher(mailer, 1, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// First delivery fails; the worker must keep draining.
	d.Enqueue(ports.Notification{To: "a@example.com", Subject: "fails"})
	mailer.waitAttempts(t, 1)

	mailer.mu.Lock()
	mailer.err = nil
	mailer.mu.Unlock()

	d.Enqueue(ports.Notification{To: "a@example.com", Subject: "succeeds"})
	mailer.waitAttempts(t, 2)

	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if len(mailer.sent) != 1 || mailer.sent[0].Subject != "succeeds" {
		t.Fatalf("expected only the second notification delivered, got %+v", mailer.sent)
	}
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	d := NewDispatcher(newRecordingMailer(), 2, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("workers did not stop on cancel")
	}
}
