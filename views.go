package chash

// Entry is a key-value pair as exposed by the entries view.
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

// Entries returns the live pair view of the map. The same view instance
// is returned on every call; mutations of the map are visible through it
// and mutations through it land in the map.
func (m *Map[K, V]) Entries() *EntrySet[K, V] {
	if m.entrySet == nil {
		m.entrySet = &EntrySet[K, V]{m: m}
	}
	return m.entrySet
}

// Keys returns the live key view of the map. The same view instance is
// returned on every call.
func (m *Map[K, V]) Keys() *KeySet[K, V] {
	if m.keySet == nil {
		m.keySet = &KeySet[K, V]{m: m}
	}
	return m.keySet
}

// Values returns the live value view of the map. The same view instance
// is returned on every call.
func (m *Map[K, V]) Values() *ValueCollection[K, V] {
	if m.valueCol == nil {
		m.valueCol = &ValueCollection[K, V]{m: m}
	}
	return m.valueCol
}

// EntrySet is a live view of the map's key-value pairs, backed directly
// by the buckets. It holds no data of its own: iteration and membership
// always reflect the map's current state.
type EntrySet[K comparable, V comparable] struct {
	m *Map[K, V]
}

// Len returns the number of pairs, which is the map's entry count.
func (s *EntrySet[K, V]) Len() int {
	return s.m.size
}

// IsEmpty reports whether the backing map is empty.
func (s *EntrySet[K, V]) IsEmpty() bool {
	return s.m.size == 0
}

// Contains reports whether the map holds exactly this pair: the key must
// be present and mapped to an equal value.
func (s *EntrySet[K, V]) Contains(e Entry[K, V]) bool {
	return s.m.lookupPair(s.m.hasher(e.Key), e.Key, e.Value) != nil
}

// Add inserts the pair unless an equal pair is already present, and
// reports whether the map changed. When the key exists under a different
// value, the value is replaced.
func (s *EntrySet[K, V]) Add(e Entry[K, V]) bool {
	hash := s.m.hasher(e.Key)
	if s.m.lookupPair(hash, e.Key, e.Value) != nil {
		return false
	}
	s.m.putNode(hash, e.Key, e.Value)
	return true
}

// AddAll adds every pair and reports whether any of them changed the map.
func (s *EntrySet[K, V]) AddAll(entries []Entry[K, V]) bool {
	changed := false
	for _, e := range entries {
		if s.Add(e) {
			changed = true
		}
	}
	return changed
}

// Remove deletes the entry matching exactly this pair and reports whether
// one was removed. A key mapped to a different value is left alone.
func (s *EntrySet[K, V]) Remove(e Entry[K, V]) bool {
	hash := s.m.hasher(e.Key)
	if s.m.lookupPair(hash, e.Key, e.Value) == nil {
		return false
	}
	s.m.unlink(hash, e.Key)
	return true
}

// RemoveAll deletes every exactly matching pair and reports whether the
// map changed.
func (s *EntrySet[K, V]) RemoveAll(entries []Entry[K, V]) bool {
	changed := false
	for _, e := range entries {
		if s.Remove(e) {
			changed = true
		}
	}
	return changed
}

// RetainAll deletes every entry whose pair is not in entries and reports
// whether the map changed. An empty slice empties the map.
func (s *EntrySet[K, V]) RetainAll(entries []Entry[K, V]) bool {
	return s.m.removeWhere(func(key K, value V) bool {
		return !containsEntry(entries, key, value)
	})
}

// ContainsAll reports whether every pair in entries is present.
func (s *EntrySet[K, V]) ContainsAll(entries []Entry[K, V]) bool {
	for _, e := range entries {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// Clear removes every entry from the backing map.
func (s *EntrySet[K, V]) Clear() {
	s.m.Clear()
}

// Slice copies the pairs into a fresh slice in iteration order.
func (s *EntrySet[K, V]) Slice() []Entry[K, V] {
	out := make([]Entry[K, V], 0, s.m.size)
	for _, head := range s.m.buckets {
		for e := head; e != nil; e = e.next {
			out = append(out, Entry[K, V]{Key: e.key, Value: e.value})
		}
	}
	return out
}

// Iterator returns a fresh iterator over the pairs.
func (s *EntrySet[K, V]) Iterator() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{newIterator(s.m)}
}

func containsEntry[K comparable, V comparable](entries []Entry[K, V], key K, value V) bool {
	for _, e := range entries {
		if e.Key == key && e.Value == value {
			return true
		}
	}
	return false
}

// KeySet is a live view of the map's keys. Removing a key removes its
// whole entry from the map. Keys cannot be added through the view: a key
// without a value is not a meaningful mapping, so Add and AddAll report
// ErrUnsupported.
type KeySet[K comparable, V comparable] struct {
	m *Map[K, V]
}

// Len returns the number of keys, which is the map's entry count.
func (s *KeySet[K, V]) Len() int {
	return s.m.size
}

// IsEmpty reports whether the backing map is empty.
func (s *KeySet[K, V]) IsEmpty() bool {
	return s.m.size == 0
}

// Contains reports whether the map holds an entry for key.
func (s *KeySet[K, V]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// ContainsAll reports whether every key in keys is present.
func (s *KeySet[K, V]) ContainsAll(keys []K) bool {
	for _, key := range keys {
		if !s.m.ContainsKey(key) {
			return false
		}
	}
	return true
}

// Add always returns ErrUnsupported.
func (s *KeySet[K, V]) Add(key K) error {
	return ErrUnsupported
}

// AddAll always returns ErrUnsupported.
func (s *KeySet[K, V]) AddAll(keys []K) error {
	return ErrUnsupported
}

// Remove deletes the entry for key and reports whether one was removed.
func (s *KeySet[K, V]) Remove(key K) bool {
	return s.m.unlink(s.m.hasher(key), key) != nil
}

// RemoveAll deletes the entry of every listed key and reports whether the
// map changed.
func (s *KeySet[K, V]) RemoveAll(keys []K) bool {
	changed := false
	for _, key := range keys {
		if s.Remove(key) {
			changed = true
		}
	}
	return changed
}

// RetainAll deletes every entry whose key is not in keys and reports
// whether the map changed. An empty slice empties the map.
func (s *KeySet[K, V]) RetainAll(keys []K) bool {
	return s.m.removeWhere(func(key K, value V) bool {
		return !containsElem(keys, key)
	})
}

// Clear removes every entry from the backing map.
func (s *KeySet[K, V]) Clear() {
	s.m.Clear()
}

// Slice copies the keys into a fresh slice in iteration order.
func (s *KeySet[K, V]) Slice() []K {
	out := make([]K, 0, s.m.size)
	for _, head := range s.m.buckets {
		for e := head; e != nil; e = e.next {
			out = append(out, e.key)
		}
	}
	return out
}

// Iterator returns a fresh iterator over the keys.
func (s *KeySet[K, V]) Iterator() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{newIterator(s.m)}
}

// ValueCollection is a live view of the map's values. Distinct keys may
// map to equal values, so unlike the key and entry views it can hold
// duplicates. Values cannot be added through the view: Add and AddAll
// report ErrUnsupported.
type ValueCollection[K comparable, V comparable] struct {
	m *Map[K, V]
}

// Len returns the number of values, which is the map's entry count.
func (c *ValueCollection[K, V]) Len() int {
	return c.m.size
}

// IsEmpty reports whether the backing map is empty.
func (c *ValueCollection[K, V]) IsEmpty() bool {
	return c.m.size == 0
}

// Contains reports whether any entry holds a value equal to value.
func (c *ValueCollection[K, V]) Contains(value V) bool {
	return c.m.ContainsValue(value)
}

// ContainsAll reports whether every listed value occurs in the map.
func (c *ValueCollection[K, V]) ContainsAll(values []V) bool {
	for _, value := range values {
		if !c.m.ContainsValue(value) {
			return false
		}
	}
	return true
}

// Add always returns ErrUnsupported.
func (c *ValueCollection[K, V]) Add(value V) error {
	return ErrUnsupported
}

// AddAll always returns ErrUnsupported.
func (c *ValueCollection[K, V]) AddAll(values []V) error {
	return ErrUnsupported
}

// Remove deletes the first entry found holding an equal value, in
// iteration order, and reports whether one was removed.
func (c *ValueCollection[K, V]) Remove(value V) bool {
	for i := range c.m.buckets {
		var prev *entry[K, V]
		for e := c.m.buckets[i]; e != nil; e = e.next {
			if e.value == value {
				if prev == nil {
					c.m.buckets[i] = e.next
				} else {
					prev.next = e.next
				}
				e.next = nil
				c.m.size--
				return true
			}
			prev = e
		}
	}
	return false
}

// RemoveAll deletes every entry holding one of the listed values and
// reports whether the map changed.
func (c *ValueCollection[K, V]) RemoveAll(values []V) bool {
	return c.m.removeWhere(func(key K, value V) bool {
		return containsElem(values, value)
	})
}

// RetainAll deletes every entry whose value is not listed and reports
// whether the map changed. An empty slice empties the map.
func (c *ValueCollection[K, V]) RetainAll(values []V) bool {
	return c.m.removeWhere(func(key K, value V) bool {
		return !containsElem(values, value)
	})
}

// Clear removes every entry from the backing map.
func (c *ValueCollection[K, V]) Clear() {
	c.m.Clear()
}

// Slice copies the values into a fresh slice in iteration order.
func (c *ValueCollection[K, V]) Slice() []V {
	out := make([]V, 0, c.m.size)
	for _, head := range c.m.buckets {
		for e := head; e != nil; e = e.next {
			out = append(out, e.value)
		}
	}
	return out
}

// Iterator returns a fresh iterator over the values.
func (c *ValueCollection[K, V]) Iterator() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{newIterator(c.m)}
}

func containsElem[T comparable](list []T, elem T) bool {
	for _, candidate := range list {
		if candidate == elem {
			return true
		}
	}
	return false
}
