package chash

import "github.com/cespare/xxhash/v2"

// Hasher turns a key into a 64-bit hash. The map never inspects keys
// itself; every key is hashed through the Hasher supplied at construction.
//
// A Hasher must be deterministic and consistent with key equality:
// a == b implies h(a) == h(b). For good chain distribution the hash
// should spread keys across the full 64-bit range.
type Hasher[K comparable] func(K) uint64

// StringHasher hashes string keys with xxHash.
func StringHasher(key string) uint64 {
	return xxhash.Sum64String(key)
}

// BytesHasher hashes byte-slice content with xxHash. Byte slices are not
// comparable and cannot be map keys directly; this helper is for composing
// hashers over keys that carry byte content, e.g. a struct key whose
// hasher concatenates its fields.
func BytesHasher(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Uint64Hasher mixes an unsigned integer key through the splitmix64
// finalizer. Dense sequential keys would otherwise occupy consecutive
// buckets and collide as one block after every resize.
func Uint64Hasher(key uint64) uint64 {
	key ^= key >> 30
	key *= 0xbf58476d1ce4e5b9
	key ^= key >> 27
	key *= 0x94d049bb133111eb
	key ^= key >> 31
	return key
}

// IntHasher hashes signed integer keys. Negative keys are safe: the value
// is reinterpreted as unsigned before mixing, so no sign handling leaks
// into bucket selection.
func IntHasher(key int) uint64 {
	return Uint64Hasher(uint64(key))
}
