package posts

import "time"

// Lifecycle is the derived liveness of a post at a single instant.
type Lifecycle struct {
	Status    Status
	ExpiresIn int // whole minutes remaining, ceiling-rounded, never negative
}

// EvaluateLifecycle computes a post's current status and remaining
// time-to-live from its expiry instant and the given clock reading. A post is
// expired the moment now reaches expiresAt. Pure and deterministic.
func EvaluateLifecycle(expiresAt, now time.Time) Lifecycle {
	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return Lifecycle{Status: StatusExpired, ExpiresIn: 0}
	}
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	return Lifecycle{Status: StatusLive, ExpiresIn: minutes}
}
