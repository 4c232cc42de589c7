package keyed

import (
	"iter"

	"github.com/morozRed/powerdex/internal/namekey"
)

// Keyed owns the canonical record for each key of one table. Values are
// handed out as pointers so every cross link aliases the stored record.
// Iteration follows insertion order; an overwritten key keeps its slot.
type Keyed[T any] struct {
	keys   []namekey.Key
	values []*T
	index  map[string]int // normalized key -> slot
}

// New creates an empty store.
func New[T any]() *Keyed[T] {
	return &Keyed[T]{index: make(map[string]int)}
}

// Get returns the record stored under key.
func (k *Keyed[T]) Get(key namekey.Key) (*T, bool) {
	if k == nil {
		return nil, false
	}
	slot, ok := k.index[key.Normalized()]
	if !ok {
		return nil, false
	}
	return k.values[slot], true
}

// Lookup is Get for a plain string name.
func (k *Keyed[T]) Lookup(name string) (*T, bool) {
	return k.Get(namekey.New(name))
}

// Insert stores value under key. An existing record is replaced and the
// previous value is returned along with true.
func (k *Keyed[T]) Insert(key namekey.Key, value *T) (*T, bool) {
	if k.index == nil {
		k.index = make(map[string]int)
	}
	if slot, ok := k.index[key.Normalized()]; ok {
		previous := k.values[slot]
		k.keys[slot] = key
		k.values[slot] = value
		return previous, true
	}
	k.index[key.Normalized()] = len(k.values)
	k.keys = append(k.keys, key)
	k.values = append(k.values, value)
	return nil, false
}

func (k *Keyed[T]) Len() int {
	if k == nil {
		return 0
	}
	return len(k.values)
}

// Values yields every record in insertion order. Callers may mutate the
// records but must not insert into or retain on the store while iterating.
func (k *Keyed[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if k == nil {
			return
		}
		for _, value := range k.values {
			if !yield(value) {
				return
			}
		}
	}
}

// All yields key/record pairs in insertion order.
func (k *Keyed[T]) All() iter.Seq2[namekey.Key, *T] {
	return func(yield func(namekey.Key, *T) bool) {
		if k == nil {
			return
		}
		for i, value := range k.values {
			if !yield(k.keys[i], value) {
				return
			}
		}
	}
}

// Keys returns the stored keys in insertion order.
func (k *Keyed[T]) Keys() []namekey.Key {
	if k == nil {
		return nil
	}
	out := make([]namekey.Key, len(k.keys))
	copy(out, k.keys)
	return out
}

// Retain drops every record for which keep returns false and reports how
// many were removed.
func (k *Keyed[T]) Retain(keep func(namekey.Key, *T) bool) int {
	if k == nil {
		return 0
	}
	keys := k.keys[:0]
	values := k.values[:0]
	for i, value := range k.values {
		if keep(k.keys[i], value) {
			keys = append(keys, k.keys[i])
			values = append(values, value)
		}
	}
	removed := len(k.values) - len(values)
	clear(k.keys[len(keys):])
	clear(k.values[len(values):])
	k.keys = keys
	k.values = values

	k.index = make(map[string]int, len(k.values))
	for i, key := range k.keys {
		k.index[key.Normalized()] = i
	}
	return removed
}
