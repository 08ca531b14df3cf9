package cache

import "time"

// State is an entry's position in the revalidation state machine.
type State int

const (
	// StateAbsent means no entry exists for the fingerprint.
	StateAbsent State = iota
	// StatePending means exactly one fetch is in flight.
	StatePending
	// StateFresh means the data is within its TTL.
	StateFresh
	// StateStale means the TTL expired or the entry was invalidated; the
	// cached value is still served while a refresh runs.
	StateStale
	// StateError means the initial fetch failed and no value exists.
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePending:
		return "pending"
	case StateFresh:
		return "fresh"
	case StateStale:
		return "stale"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// entry is the single record for a fingerprint. All fields are guarded by the
// cache mutex; done is closed exactly once, when the initial fetch settles.
type entry struct {
	fp         Fingerprint
	state      State
	data       any
	err        error
	fetchedAt  time.Time
	stale      bool // explicit invalidation, independent of TTL
	refreshing bool // a background refresh is in flight
	done       chan struct{}
}

// settled reports whether the entry holds data or a terminal error.
func (e *entry) settled() bool {
	return e.state == StateFresh || e.state == StateStale || e.state == StateError
}
