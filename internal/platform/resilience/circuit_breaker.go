package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker stops calling an optional dependency after consecutive failures and lets
// a few probes through once the open timeout has passed. A nil *CircuitBreaker always
// allows, so callers do not need to check whether it is configured.
type CircuitBreaker struct {
	cfg      CircuitBreakerConfig
	onChange func(from, to CircuitState)
	now      func() time.Time

	mu        sync.Mutex
	state     CircuitState
	failures  int
	openedAt  time.Time
	inFlight  int
	successes int
}

// NewCircuitBreaker returns nil when cfg is disabled.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return &CircuitBreaker{
		cfg:   cfg.withDefaults(),
		state: CircuitStateClosed,
		now:   time.Now,
	}
}

// OnStateChange registers fn to run after every transition. fn is called with the
// breaker lock released.
func (b *CircuitBreaker) OnStateChange(fn func(from, to CircuitState)) {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Execute runs fn when the breaker allows it and records the outcome. Errors for which
// ignore returns true count as successes, e.g. a cache miss.
func (b *CircuitBreaker) Execute(fn func() error, ignore func(error) bool) error {
	if b == nil {
		return fn()
	}
	if err := b.Allow(); err != nil {
		return err
	}

	err := fn()
	if err != nil && (ignore == nil || !ignore(err)) {
		b.RecordFailure()
		return err
	}
	b.RecordSuccess()
	return err
}

func (b *CircuitBreaker) Allow() error {
	if b == nil {
		return nil
	}

	b.mu.Lock()
	from := b.state
	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		b.setLocked(CircuitStateHalfOpen)
	}

	var err error
	switch b.state {
	case CircuitStateOpen:
		err = ErrCircuitOpen
	case CircuitStateHalfOpen:
		if b.inFlight >= b.cfg.HalfOpenMaxReq {
			err = ErrCircuitOpen
		} else {
			b.inFlight++
		}
	}
	b.unlockAndNotify(from)
	return err
}

func (b *CircuitBreaker) RecordSuccess() {
	if b == nil {
		return
	}

	b.mu.Lock()
	from := b.state
	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.inFlight = max(b.inFlight-1, 0)
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxReq && b.inFlight == 0 {
			b.setLocked(CircuitStateClosed)
		}
	}
	b.unlockAndNotify(from)
}

func (b *CircuitBreaker) RecordFailure() {
	if b == nil {
		return
	}

	b.mu.Lock()
	from := b.state
	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.setLocked(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.setLocked(CircuitStateOpen)
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
	b.unlockAndNotify(from)
}

// State reports half_open once the open timeout has passed, even before the next probe.
func (b *CircuitBreaker) State() CircuitState {
	if b == nil {
		return CircuitStateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) setLocked(to CircuitState) {
	b.state = to
	b.inFlight = 0
	b.successes = 0
	switch to {
	case CircuitStateOpen:
		b.openedAt = b.now()
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	}
}

func (b *CircuitBreaker) unlockAndNotify(from CircuitState) {
	to, fn := b.state, b.onChange
	b.mu.Unlock()
	if fn != nil && from != to {
		fn(from, to)
	}
}
