package services

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// BreakerState is the state of a CircuitBreaker
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures    int
	ResetTimeout   time.Duration
	ProbeSuccesses int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:    5,
		ResetTimeout:   30 * time.Second,
		ProbeSuccesses: 3,
	}
}

// CircuitBreaker stops calls to a failing dependency. After MaxFailures
// consecutive failures it opens; once ResetTimeout has passed it lets calls
// through again and closes after ProbeSuccesses successes in a row.
type CircuitBreaker struct {
	mu             sync.Mutex
	config         CircuitBreakerConfig
	now            func() time.Time
	state          BreakerState
	consecutive    int
	probeSuccesses int
	openedAt       time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	if config.MaxFailures <= 0 {
		config = DefaultCircuitBreakerConfig()
	}
	return &CircuitBreaker{
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
}

// Allow reports whether a call may proceed
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.probeSuccesses = 0
	}

	return cb.state != StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.probeSuccesses++
		if cb.probeSuccesses >= cb.config.ProbeSuccesses {
			cb.state = StateClosed
			cb.consecutive = 0
			cb.probeSuccesses = 0
		}
	case StateClosed:
		cb.consecutive = 0
	}
}

// RecordFailure counts a failed call and reports whether it opened the breaker
func (cb *CircuitBreaker) RecordFailure() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.trip()
		return true
	case StateClosed:
		cb.consecutive++
		if cb.consecutive >= cb.config.MaxFailures {
			cb.trip()
			return true
		}
	}
	return false
}

// trip opens the breaker; cb.mu must be held
func (cb *CircuitBreaker) trip() {
	cb.state = StateOpen
	cb.openedAt = cb.now()
	cb.probeSuccesses = 0
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
