package models

// CircuitBreakerState tracks the lifecycle of a circuit breaker guarding an
// outbound collaborator. State values are defined by the breaker itself.
type CircuitBreakerState int

// String returns a human-readable state name for logs and metrics
func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "unknown"
	}
}
