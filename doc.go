/*
Package chash provides a generic hash table built on separate chaining.

Map is an in-memory key-value container: an array of buckets, each the
head of a singly linked chain of entries. The hash function is supplied
by the caller, which keeps the engine independent of the key type —
built-in hashers cover strings and integers.

Basic usage:

	import "github.com/theflywheel/chash"

	// Create a map with default capacity and load factor
	m, err := chash.New[string, int](chash.StringHasher)
	if err != nil {
		log.Fatal(err)
	}

	// Insert and look up data
	m.Put("alpha", 1)
	m.Put("beta", 2)

	if v, ok := m.Get("alpha"); ok {
		fmt.Println("alpha:", v)
	}

	// Iterate through the live key view
	it := m.Keys().Iterator()
	for it.HasNext() {
		k, _ := it.Next()
		fmt.Println(k)
	}

Features:

  - Separate chaining for collision resolution
  - Caller-supplied hash function with xxHash-backed defaults
  - Automatic doubling when the load factor threshold is reached
  - Cached live views over entries, keys and values
  - Deterministic bucket-order iteration with iterator-side removal

Implementation Details:

Each entry caches the 64-bit hash of its key at insertion time; lookups
compare the cached hash before falling back to key equality, and resizing
reuses the cached hash to relink existing entries into the doubled bucket
array without reallocating them. The bucket for a hash is selected with
hash % capacity in unsigned arithmetic, so a negative index cannot occur.

When an insertion brings the entry count to capacity * loadFactor, the
bucket array is doubled before the insert returns. Capacity only grows;
Clear empties the buckets but keeps the array.

The entries, keys and values views are thin handles over the same
buckets: one cached instance per map, reflecting every later mutation.
Restricted mutations (adding a bare key or value) report ErrUnsupported,
and an iterator driven past its last element reports ErrExhausted.

Map is not safe for concurrent use; callers sharing one across
goroutines must synchronize externally.
*/
package chash
