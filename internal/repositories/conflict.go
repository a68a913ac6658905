package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes signalling that a transaction lost a race and is safe
// to retry: serialization_failure and deadlock_detected.
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

// IsCommitConflict reports whether err is a transient store conflict. The
// settlement orchestrator retries these with a bounded budget; every other
// error is final.
func IsCommitConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure ||
			string(pqErr.Code) == pqDeadlockDetected
	}
	return false
}
