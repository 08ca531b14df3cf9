// Package cache implements the request cache and revalidation layer.
//
// Reads are keyed by a Fingerprint derived deterministically from the
// operation name and its parameters. Each fingerprint owns at most one entry,
// and an entry walks a fixed state machine:
//
//	Absent -> Pending -> {Fresh | Error} -> Stale -> Pending -> ...
//
// A Fresh entry is returned without touching the network. A Stale entry is
// returned immediately while a background refresh runs, detached from the
// caller's context. Concurrent reads of a Pending fingerprint attach to the
// single in-flight fetch; exactly one backend request is made. A caller may
// abandon a read by canceling its context; the fetch continues and its
// result is committed for future reads.
//
// Staleness is governed by a per-class TTL Policy. Mutations invalidate
// dependent fingerprints through Invalidate, which marks entries stale so the
// next read refetches.
package cache
