package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/commercekit/commercekit/commerce"
)

// Fingerprint identifies a cached read: the operation plus a digest of its
// parameters. Identical logical inputs always produce identical fingerprints
// regardless of value identity.
type Fingerprint struct {
	Operation commerce.Operation
	Digest    string
}

// NewFingerprint derives the fingerprint for an operation and its parameters.
// Parameters are serialized to canonical JSON (struct fields in declaration
// order, map keys sorted) and hashed.
func NewFingerprint(op commerce.Operation, params any) (Fingerprint, error) {
	var payload []byte
	if params != nil {
		var err error
		payload, err = json.Marshal(params)
		if err != nil {
			return Fingerprint{}, fmt.Errorf("fingerprint %s: %w", op, err)
		}
	}
	sum := sha256.Sum256(payload)
	return Fingerprint{
		Operation: op,
		Digest:    hex.EncodeToString(sum[:8]),
	}, nil
}

// String renders the fingerprint as "operation:digest".
func (f Fingerprint) String() string {
	return string(f.Operation) + ":" + f.Digest
}

// Class returns the staleness class of the fingerprinted operation.
func (f Fingerprint) Class() commerce.Class {
	return commerce.ClassOf(f.Operation)
}

// Predicate selects fingerprints for invalidation.
type Predicate func(Fingerprint) bool

// ByOperation matches entries whose operation is one of ops.
func ByOperation(ops ...commerce.Operation) Predicate {
	set := make(map[commerce.Operation]struct{}, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return func(f Fingerprint) bool {
		_, ok := set[f.Operation]
		return ok
	}
}

// ByClass matches entries whose operation belongs to one of the classes.
func ByClass(classes ...commerce.Class) Predicate {
	set := make(map[commerce.Class]struct{}, len(classes))
	for _, c := range classes {
		set[c] = struct{}{}
	}
	return func(f Fingerprint) bool {
		_, ok := set[f.Class()]
		return ok
	}
}

// All matches every entry.
func All() Predicate {
	return func(Fingerprint) bool { return true }
}
