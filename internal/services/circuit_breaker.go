package services

import (
	"errors"
	"sync"
	"time"

	"bancore/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreakerConfig tunes when the breaker trips and how it recovers.
// HalfOpenSuccesses is the number of consecutive successful probes required
// to close the breaker again after the reset timeout elapses.
type CircuitBreakerConfig struct {
	MaxFailures       int
	ResetTimeout      time.Duration
	HalfOpenSuccesses int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 3,
	}
}

// CircuitBreaker isolates the settlement flow from a failing outbound
// collaborator (the notification sender). Closed counts consecutive
// failures; open refuses calls until ResetTimeout has passed since the last
// failure; half-open lets probes through and closes after enough succeed.
type CircuitBreaker struct {
	mu     sync.RWMutex
	config CircuitBreakerConfig

	state     models.CircuitBreakerState
	failures  int
	probeWins int
	trippedAt time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return &CircuitBreaker{config: config, state: StateClosed}
}

// IsOpen reports whether calls should be refused right now. An open breaker
// whose reset timeout has elapsed moves to half-open and starts admitting
// probes.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && time.Since(cb.trippedAt) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.probeWins = 0
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.probeWins++
		if cb.probeWins >= cb.config.HalfOpenSuccesses {
			cb.reset()
		}
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.trippedAt = time.Now()

	switch cb.state {
	case StateHalfOpen:
		// A failed probe reopens immediately
		cb.trip()
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.trip()
		}
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

// Reset forces the breaker closed regardless of its history
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *CircuitBreaker) trip() {
	cb.state = StateOpen
	cb.probeWins = 0
}

func (cb *CircuitBreaker) reset() {
	cb.state = StateClosed
	cb.failures = 0
	cb.probeWins = 0
}
