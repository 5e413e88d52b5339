package chash

import "fmt"

const (
	// DefaultCapacity is the number of buckets a map starts with when no
	// capacity is given.
	DefaultCapacity = 16

	// DefaultLoadFactor is the fill ratio at which the bucket array is
	// doubled when no load factor is given.
	DefaultLoadFactor = 0.75
)

// entry is a single node of a bucket chain. The hash is computed once at
// insertion and reused for bucket selection, including across resizes.
type entry[K comparable, V comparable] struct {
	hash  uint64
	key   K
	value V
	next  *entry[K, V]
}

// Map is a hash table mapping keys to values using separate chaining:
// each bucket holds the head of a singly linked chain of entries, and
// every key appears in at most one chain node.
//
// Bucket selection is hash % capacity in unsigned 64-bit arithmetic.
// That formula is the map's sole hashing contract; a negative index can
// never be produced. When an insertion brings the entry count to
// capacity * loadFactor or above, the bucket array is doubled and all
// entries are relinked into their new chains.
//
// A Map is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own locking.
type Map[K comparable, V comparable] struct {
	hasher     Hasher[K]
	buckets    []*entry[K, V]
	size       int
	loadFactor float64

	// View instances are created once per map and reused, so repeated
	// calls to Entries/Keys/Values hand back the same live handle.
	entrySet *EntrySet[K, V]
	keySet   *KeySet[K, V]
	valueCol *ValueCollection[K, V]
}

// New creates an empty map with DefaultCapacity buckets and
// DefaultLoadFactor, hashing keys with the provided hasher.
func New[K comparable, V comparable](hasher Hasher[K]) (*Map[K, V], error) {
	return NewWith[K, V](hasher, DefaultCapacity, DefaultLoadFactor)
}

// NewWithCapacity creates an empty map with the provided number of
// buckets and DefaultLoadFactor.
func NewWithCapacity[K comparable, V comparable](hasher Hasher[K], capacity int) (*Map[K, V], error) {
	return NewWith[K, V](hasher, capacity, DefaultLoadFactor)
}

// NewWithLoadFactor creates an empty map with DefaultCapacity buckets and
// the provided load factor.
func NewWithLoadFactor[K comparable, V comparable](hasher Hasher[K], loadFactor float64) (*Map[K, V], error) {
	return NewWith[K, V](hasher, DefaultCapacity, loadFactor)
}

// NewWith creates an empty map with the provided bucket count and load
// factor. The capacity must be at least 2 and the load factor must lie in
// (0, 1]; violations are reported as ErrInvalidCapacity or
// ErrInvalidLoadFactor.
func NewWith[K comparable, V comparable](hasher Hasher[K], capacity int, loadFactor float64) (*Map[K, V], error) {
	if hasher == nil {
		return nil, ErrNilHasher
	}
	if capacity < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCapacity, capacity)
	}
	if loadFactor <= 0 || loadFactor > 1 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidLoadFactor, loadFactor)
	}

	return &Map[K, V]{
		hasher:     hasher,
		buckets:    make([]*entry[K, V], capacity),
		loadFactor: loadFactor,
	}, nil
}

// NewFrom creates a map with default capacity and load factor, seeded
// with every pair from source by bulk insertion.
func NewFrom[K comparable, V comparable](hasher Hasher[K], source map[K]V) (*Map[K, V], error) {
	m, err := New[K, V](hasher)
	if err != nil {
		return nil, err
	}
	m.PutAll(source)
	return m, nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Capacity returns the current number of buckets. The capacity only
// grows; it is doubled whenever an insertion reaches the load factor
// threshold and is never shrunk, not even by Clear.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// LoadFactor returns the fill ratio at which the map expands.
func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor
}

// Get returns the value stored under key, or the zero value and false
// when the key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.lookup(m.hasher(key), key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether the map holds an entry for key.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.lookup(m.hasher(key), key) != nil
}

// ContainsValue reports whether any entry holds a value equal to value.
// Unlike key lookups this is a full scan across all chains.
func (m *Map[K, V]) ContainsValue(value V) bool {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if e.value == value {
				return true
			}
		}
	}
	return false
}

// Put associates value with key. When the key is already present its
// value is replaced in place and the previous value is returned with
// true; otherwise a new entry is appended to the chain tail and the zero
// value is returned with false. A fresh insertion that reaches the load
// factor threshold doubles the bucket array before Put returns.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	return m.putNode(m.hasher(key), key, value)
}

// PutIfAbsent inserts the pair only when the key is not yet present and
// reports whether an insertion happened.
func (m *Map[K, V]) PutIfAbsent(key K, value V) bool {
	hash := m.hasher(key)
	if m.lookup(hash, key) != nil {
		return false
	}
	m.putNode(hash, key, value)
	return true
}

// PutIfExists replaces the value of an existing entry and reports whether
// the key was present. An absent key is left absent.
func (m *Map[K, V]) PutIfExists(key K, value V) bool {
	if e := m.lookup(m.hasher(key), key); e != nil {
		e.value = value
		return true
	}
	return false
}

// PutAll inserts every pair from source, replacing values of keys already
// present. A nil source is a no-op.
func (m *Map[K, V]) PutAll(source map[K]V) {
	for key, value := range source {
		m.putNode(m.hasher(key), key, value)
	}
}

// Remove deletes the entry for key and returns its value, or the zero
// value and false when the key is absent.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	if e := m.unlink(m.hasher(key), key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Clear removes every entry. The bucket array keeps its current length,
// so a cleared map retains the capacity it had grown to.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// ForEach calls fn for every entry, bucket by bucket, until fn returns
// false or the entries are exhausted. fn must not mutate the map.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// ToMap copies the entries into a freshly allocated built-in map. The
// snapshot is independent of the table; later mutations are not
// reflected.
func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.size)
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			out[e.key] = e.value
		}
	}
	return out
}

// index selects the bucket for a hash under the current capacity.
func (m *Map[K, V]) index(hash uint64) int {
	return int(hash % uint64(len(m.buckets)))
}

// lookup returns the chain node holding key, or nil. The cached hash is
// compared before the key as a cheap short-circuit.
func (m *Map[K, V]) lookup(hash uint64, key K) *entry[K, V] {
	for e := m.buckets[m.index(hash)]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			return e
		}
	}
	return nil
}

// lookupPair returns the chain node matching both key and value, or nil.
func (m *Map[K, V]) lookupPair(hash uint64, key K, value V) *entry[K, V] {
	if e := m.lookup(hash, key); e != nil && e.value == value {
		return e
	}
	return nil
}

// putNode replaces the value of an existing node or appends a new node at
// the chain tail, growing the table after a structural insertion when the
// load factor threshold is reached.
func (m *Map[K, V]) putNode(hash uint64, key K, value V) (V, bool) {
	idx := m.index(hash)

	var prev *entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			before := e.value
			e.value = value
			return before, true
		}
		prev = e
	}

	node := &entry[K, V]{hash: hash, key: key, value: value}
	if prev == nil {
		m.buckets[idx] = node
	} else {
		prev.next = node
	}
	m.size++
	if m.needsGrow(m.size) {
		m.grow()
	}

	var zero V
	return zero, false
}

// unlink removes the chain node holding key, fixing up the predecessor's
// next pointer or the bucket head, and returns the removed node or nil.
func (m *Map[K, V]) unlink(hash uint64, key K) *entry[K, V] {
	idx := m.index(hash)

	var prev *entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			if prev == nil {
				m.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			m.size--
			return e
		}
		prev = e
	}
	return nil
}

// removeWhere unlinks every entry for which remove returns true and
// reports whether anything was removed. Backs the bulk removal
// operations of the views.
func (m *Map[K, V]) removeWhere(remove func(key K, value V) bool) bool {
	changed := false
	for i := range m.buckets {
		var prev *entry[K, V]
		for e := m.buckets[i]; e != nil; {
			next := e.next
			if remove(e.key, e.value) {
				if prev == nil {
					m.buckets[i] = next
				} else {
					prev.next = next
				}
				e.next = nil
				m.size--
				changed = true
			} else {
				prev = e
			}
			e = next
		}
	}
	return changed
}

// needsGrow reports whether a map holding entries entries has reached the
// expansion threshold.
func (m *Map[K, V]) needsGrow(entries int) bool {
	return float64(entries) >= float64(len(m.buckets))*m.loadFactor
}

// grow doubles the bucket array and relinks every existing node into its
// new chain. Nodes are moved, not reinserted: the cached hash picks the
// new bucket, no node is reallocated, and size is left untouched so the
// count cannot drift during a resize. Relinking appends at the tail, so
// entries that land in the same bucket keep their relative order.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([]*entry[K, V], len(old)*2)
	tails := make([]*entry[K, V], len(m.buckets))

	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			e.next = nil

			idx := m.index(e.hash)
			if tails[idx] == nil {
				m.buckets[idx] = e
			} else {
				tails[idx].next = e
			}
			tails[idx] = e

			e = next
		}
	}
}
