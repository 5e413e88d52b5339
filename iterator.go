package chash

// iterator walks the buckets in index order, descending each chain from
// head to tail before advancing to the next non-empty bucket. The order
// is deterministic for a fixed table state but carries no external
// meaning. Positions are re-derived from the live chains on every step,
// never cached, so the iterator sees the table as it currently is.
//
// Structural mutation of the map during iteration through any path other
// than the iterator's own Remove is undefined behavior.
type iterator[K comparable, V comparable] struct {
	m      *Map[K, V]
	bucket int          // bucket holding next; -1 before the first scan
	next   *entry[K, V] // entry the following Next will return
	last   *entry[K, V] // entry the previous Next returned, nil once removed
}

func newIterator[K comparable, V comparable](m *Map[K, V]) iterator[K, V] {
	it := iterator[K, V]{m: m, bucket: -1}
	it.next = it.nextHead()
	return it
}

// HasNext reports whether another entry remains, without consuming it.
func (it *iterator[K, V]) HasNext() bool {
	return it.next != nil
}

// Remove unlinks the entry most recently returned by Next from the
// underlying map. It can be called once per returned entry; calling it
// before the first Next or twice in a row returns ErrNoElement.
func (it *iterator[K, V]) Remove() error {
	if it.last == nil {
		return ErrNoElement
	}
	it.m.unlink(it.last.hash, it.last.key)
	it.last = nil
	return nil
}

// nextEntry returns the pending entry and advances to either its chain
// successor or the next non-empty bucket's head. Past exhaustion it
// returns ErrExhausted.
func (it *iterator[K, V]) nextEntry() (*entry[K, V], error) {
	if it.next == nil {
		return nil, ErrExhausted
	}

	it.last = it.next
	if it.last.next != nil {
		it.next = it.last.next
	} else {
		it.next = it.nextHead()
	}
	return it.last, nil
}

// nextHead returns the head of the first non-empty bucket after the
// current one, or nil when none remains.
func (it *iterator[K, V]) nextHead() *entry[K, V] {
	for i := it.bucket + 1; i < len(it.m.buckets); i++ {
		if it.m.buckets[i] != nil {
			it.bucket = i
			return it.m.buckets[i]
		}
	}
	return nil
}

// EntryIterator iterates over key-value pairs. Instances are obtained
// from EntrySet.Iterator.
type EntryIterator[K comparable, V comparable] struct {
	iterator[K, V]
}

// Next returns the current pair and advances the iterator. It returns
// ErrExhausted when called after the last pair.
func (it *EntryIterator[K, V]) Next() (Entry[K, V], error) {
	e, err := it.nextEntry()
	if err != nil {
		return Entry[K, V]{}, err
	}
	return Entry[K, V]{Key: e.key, Value: e.value}, nil
}

// KeyIterator iterates over keys. Instances are obtained from
// KeySet.Iterator.
type KeyIterator[K comparable, V comparable] struct {
	iterator[K, V]
}

// Next returns the current key and advances the iterator. It returns
// ErrExhausted when called after the last key.
func (it *KeyIterator[K, V]) Next() (K, error) {
	e, err := it.nextEntry()
	if err != nil {
		var zero K
		return zero, err
	}
	return e.key, nil
}

// ValueIterator iterates over values. Instances are obtained from
// ValueCollection.Iterator.
type ValueIterator[K comparable, V comparable] struct {
	iterator[K, V]
}

// Next returns the current value and advances the iterator. It returns
// ErrExhausted when called after the last value.
func (it *ValueIterator[K, V]) Next() (V, error) {
	e, err := it.nextEntry()
	if err != nil {
		var zero V
		return zero, err
	}
	return e.value, nil
}
