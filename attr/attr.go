// Package attr implements an ordered, immutable string-keyed table.
package attr

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every *LookupError.
var ErrNotFound = errors.New("attr: key not found")

// LookupError reports a key absent from a Table.
type LookupError struct {
	Key string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("attr: key %q not found", e.Key)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrNotFound
}

// Pair is a single key/value entry used to build a Table.
type Pair[V any] struct {
	Key   string
	Value V
}

// Table maps string keys to values and remembers insertion order.
// The zero Table is empty and ready to use.
type Table[V any] struct {
	keys  []string
	index map[string]V
}

// New builds a Table from pairs. Duplicate keys are an error.
func New[V any](pairs ...Pair[V]) (Table[V], error) {
	t := Table[V]{
		keys:  make([]string, 0, len(pairs)),
		index: make(map[string]V, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := t.index[p.Key]; dup {
			return Table[V]{}, fmt.Errorf("attr: duplicate key %q", p.Key)
		}
		t.keys = append(t.keys, p.Key)
		t.index[p.Key] = p.Value
	}
	return t, nil
}

// Get returns the value stored at key.
func (t Table[V]) Get(key string) (V, error) {
	v, ok := t.index[key]
	if !ok {
		return v, &LookupError{Key: key}
	}
	return v, nil
}

// GetOrDefault returns the value stored at key or def when absent.
func (t Table[V]) GetOrDefault(key string, def V) V {
	if v, ok := t.index[key]; ok {
		return v
	}
	return def
}

// Exists reports whether key is present.
func (t Table[V]) Exists(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Keys returns a copy of the keys in insertion order.
func (t Table[V]) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of entries.
func (t Table[V]) Len() int { return len(t.keys) }
