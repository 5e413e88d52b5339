package chash

import "errors"

var (
	// ErrInvalidCapacity is returned by constructors given a capacity
	// smaller than 2.
	ErrInvalidCapacity = errors.New("chash: capacity must be at least 2")

	// ErrInvalidLoadFactor is returned by constructors given a load factor
	// outside the range (0, 1].
	ErrInvalidLoadFactor = errors.New("chash: load factor must be in (0, 1]")

	// ErrNilHasher is returned by constructors given a nil hash function.
	ErrNilHasher = errors.New("chash: hasher must not be nil")

	// ErrExhausted is returned by Next when the iterator has run past the
	// last entry.
	ErrExhausted = errors.New("chash: iterator exhausted")

	// ErrNoElement is returned by the iterator's Remove when no element has
	// been returned yet, or the last returned element was already removed.
	ErrNoElement = errors.New("chash: no element to remove")

	// ErrUnsupported is returned by structurally disallowed view mutations,
	// such as adding a bare key to the key set.
	ErrUnsupported = errors.New("chash: operation not supported on this view")
)
