package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold int, openTimeout time.Duration, halfOpen int) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpen,
	})
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_Transitions(t *testing.T) {
	b, now := newTestBreaker(2, 5*time.Second, 1)

	var transitions []string
	b.OnStateChange(func(from, to CircuitState) {
		transitions = append(transitions, string(from)+"->"+string(to))
	})

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}

	want := []string{"closed->open", "open->half_open", "half_open->closed"}
	if len(transitions) != len(want) {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("unexpected transitions: %v", transitions)
		}
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	b, now := newTestBreaker(1, time.Second, 1)

	b.RecordFailure()
	*now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	b.RecordFailure()

	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteIgnoresMisses(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})
	errMiss := errors.New("miss")
	errDown := errors.New("down")
	isMiss := func(err error) bool { return errors.Is(err, errMiss) }

	if err := b.Execute(func() error { return errMiss }, isMiss); !errors.Is(err, errMiss) {
		t.Fatalf("expected miss to pass through, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("miss must not trip the breaker, got %s", state)
	}

	_ = b.Execute(func() error { return errDown }, isMiss)
	if err := b.Execute(func() error { return nil }, isMiss); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open breaker, got %v", err)
	}
}

func TestCircuitBreaker_DisabledIsNil(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{})
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}
	b.OnStateChange(func(CircuitState, CircuitState) {})
	if err := b.Execute(func() error { return nil }, nil); err != nil {
		t.Fatalf("nil breaker must allow: %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("nil breaker reports %s", state)
	}
}

func TestCircuitBreakerConfig_Defaults(t *testing.T) {
	got := CircuitBreakerConfig{Enabled: true}.withDefaults()
	if got.FailureThreshold != 5 || got.OpenTimeout != 15*time.Second || got.HalfOpenMaxReq != 2 {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}
