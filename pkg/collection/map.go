package collection

import "iter"

// Entry is a single key/value pair for Map construction and insertion.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a key/value container that iterates in first-insertion key order.
// Put reports whether the insertion was accepted.
type Map[K comparable, V any] interface {
	Len() int
	Get(key K) (V, bool)
	Keys() []K
	Entries() iter.Seq2[K, V]
	Put(entries ...Entry[K, V]) bool
}

// NewMap returns a growable map seeded with entries; a repeated key keeps its
// first position but takes the later value.
func NewMap[K comparable, V any](entries ...Entry[K, V]) Map[K, V] {
	m := &mutableMap[K, V]{values: make(map[K]V, len(entries))}
	m.Put(entries...)
	return m
}

// UnmodifiableMap returns a frozen map holding the given entries.
func UnmodifiableMap[K comparable, V any](entries ...Entry[K, V]) Map[K, V] {
	m := &mutableMap[K, V]{values: make(map[K]V, len(entries))}
	m.Put(entries...)
	return frozenMap[K, V]{keys: m.keys, values: m.values}
}

// FreezeMap returns an unmodifiable snapshot of m. A nil map freezes to an
// empty one.
func FreezeMap[K comparable, V any](m Map[K, V]) Map[K, V] {
	frozen := frozenMap[K, V]{keys: []K{}, values: map[K]V{}}
	if m == nil {
		return frozen
	}
	frozen.keys = m.Keys()
	frozen.values = make(map[K]V, len(frozen.keys))
	for _, k := range frozen.keys {
		v, _ := m.Get(k)
		frozen.values[k] = v
	}
	return frozen
}

// IsUnmodifiableMap probes m by attempting a zero-entry put and reports
// whether the map rejected it. A nil map is not unmodifiable.
func IsUnmodifiableMap[K comparable, V any](m Map[K, V]) bool {
	if m == nil {
		return false
	}
	return !m.Put()
}

type mutableMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func (m *mutableMap[K, V]) Len() int  { return len(m.keys) }
func (m *mutableMap[K, V]) Keys() []K { return copyItems(m.keys) }

func (m *mutableMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mutableMap[K, V]) Entries() iter.Seq2[K, V] {
	return entriesInOrder(m.keys, m.values)
}

func (m *mutableMap[K, V]) Put(entries ...Entry[K, V]) bool {
	for _, e := range entries {
		if _, ok := m.values[e.Key]; !ok {
			m.keys = append(m.keys, e.Key)
		}
		m.values[e.Key] = e.Value
	}
	return true
}

type frozenMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func (m frozenMap[K, V]) Len() int                { return len(m.keys) }
func (m frozenMap[K, V]) Keys() []K               { return copyItems(m.keys) }
func (m frozenMap[K, V]) Put(...Entry[K, V]) bool { return false }

func (m frozenMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m frozenMap[K, V]) Entries() iter.Seq2[K, V] {
	return entriesInOrder(m.keys, m.values)
}

func entriesInOrder[K comparable, V any](keys []K, values map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range keys {
			if !yield(k, values[k]) {
				return
			}
		}
	}
}
