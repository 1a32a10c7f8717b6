package clients

import (
	"sync"
	"time"
)

// State is the circuit breaker position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures a CircuitBreaker. Zero values fall back to
// one failure, one probe and a 30s cool-down.
type CircuitBreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the circuit.
	MaxFailures int

	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration

	// HalfOpenLimit is both the number of concurrent probes and the number of
	// consecutive probe successes needed to close the circuit.
	HalfOpenLimit int
}

const defaultBreakerCoolDown = 30 * time.Second

// CircuitBreaker stops calls to the quote source after repeated failures.
//
//	closed    --MaxFailures failures--> open
//	open      --Timeout elapsed-------> half-open (on the next Allow)
//	half-open --HalfOpenLimit successes-> closed
//	half-open --any failure-----------> open
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu       sync.Mutex
	state    State
	streak   int // consecutive failures (closed) or successes (half-open)
	probes   int // probes in flight while half-open
	openedAt time.Time
	onChange func(from, to State)
}

// NewCircuitBreaker creates a closed circuit breaker.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 1
	}

	if cfg.HalfOpenLimit <= 0 {
		cfg.HalfOpenLimit = 1
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultBreakerCoolDown
	}

	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to run after every transition. fn runs on the
// caller's goroutine once the breaker lock is released.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	cb.onChange = fn
	cb.mu.Unlock()
}

// Allow reports whether a call may proceed. Callers that get true must
// finish with RecordSuccess, RecordFailure or Abandon.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()

	var notify func()

	allowed := false

	switch cb.state {
	case StateClosed:
		allowed = true
	case StateOpen:
		if cb.now().Sub(cb.openedAt) >= cb.cfg.Timeout {
			notify = cb.moveLocked(StateHalfOpen)
			cb.probes = 1
			allowed = true
		}
	case StateHalfOpen:
		if cb.probes < cb.cfg.HalfOpenLimit {
			cb.probes++
			allowed = true
		}
	}

	cb.mu.Unlock()
	run(notify)

	return allowed
}

// RecordSuccess records a completed call.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()

	var notify func()

	switch cb.state {
	case StateClosed:
		cb.streak = 0
	case StateHalfOpen:
		cb.releaseProbeLocked()
		cb.streak++
		if cb.streak >= cb.cfg.HalfOpenLimit {
			notify = cb.moveLocked(StateClosed)
		}
	}

	cb.mu.Unlock()
	run(notify)
}

// RecordFailure records a failed call. A half-open circuit reopens at once.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()

	var notify func()

	switch cb.state {
	case StateClosed:
		cb.streak++
		if cb.streak >= cb.cfg.MaxFailures {
			notify = cb.moveLocked(StateOpen)
		}
	case StateHalfOpen:
		cb.releaseProbeLocked()
		notify = cb.moveLocked(StateOpen)
	}

	cb.mu.Unlock()
	run(notify)
}

// Abandon frees a probe slot without an outcome, for calls the caller
// cancelled before the quote source answered.
func (cb *CircuitBreaker) Abandon() {
	cb.mu.Lock()
	if cb.state == StateHalfOpen {
		cb.releaseProbeLocked()
	}
	cb.mu.Unlock()
}

// State returns the current position.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

func (cb *CircuitBreaker) releaseProbeLocked() {
	if cb.probes > 0 {
		cb.probes--
	}
}

// moveLocked switches state and returns the pending callback, if any.
func (cb *CircuitBreaker) moveLocked(to State) func() {
	from := cb.state
	if from == to {
		return nil
	}

	cb.state = to
	cb.streak = 0

	if to == StateOpen {
		cb.openedAt = cb.now()
		cb.probes = 0
	}

	if fn := cb.onChange; fn != nil {
		return func() { fn(from, to) }
	}

	return nil
}

func run(fn func()) {
	if fn != nil {
		fn()
	}
}
