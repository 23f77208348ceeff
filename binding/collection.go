package binding

import (
	"encoding/json"
)

// Keyer is implemented by records stored in a Keyed collection.
type Keyer interface {
	Key() string
}

// Keyed is a collection indexed by a natural key taken from each value.
// Adding a value whose key is already present replaces the earlier value in
// place; iteration follows first insertion.
type Keyed[V any] struct {
	order []string
	items map[string]*V
}

// NewKeyed builds a collection from values; *V must implement Keyer.
func NewKeyed[V any](values ...*V) *Keyed[V] {
	k := &Keyed[V]{items: make(map[string]*V)}
	for _, v := range values {
		k.Add(v)
	}
	return k
}

// Add inserts v under its natural key. Nil values are ignored.
func (k *Keyed[V]) Add(v *V) {
	if v == nil {
		return
	}
	k.Put(any(v).(Keyer).Key(), v)
}

// Put inserts v under an explicit key.
func (k *Keyed[V]) Put(key string, v *V) {
	if k.items == nil {
		k.items = make(map[string]*V)
	}
	if _, ok := k.items[key]; !ok {
		k.order = append(k.order, key)
	}
	k.items[key] = v
}

func (k *Keyed[V]) Get(key string) (*V, bool) {
	if k == nil {
		return nil, false
	}
	v, ok := k.items[key]
	return v, ok
}

func (k *Keyed[V]) Len() int {
	if k == nil {
		return 0
	}
	return len(k.order)
}

func (k *Keyed[V]) Keys() []string {
	if k == nil {
		return nil
	}
	return append([]string(nil), k.order...)
}

// Values returns the values in iteration order.
func (k *Keyed[V]) Values() []*V {
	if k == nil {
		return nil
	}
	out := make([]*V, 0, len(k.order))
	for _, key := range k.order {
		out = append(out, k.items[key])
	}
	return out
}

func (k *Keyed[V]) Clear() {
	k.order = k.order[:0]
	clear(k.items)
}

func (k *Keyed[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Values())
}

// Set is an insertion-ordered set of strings.
type Set struct {
	items []string
	index map[string]struct{}
}

func NewSet(values ...string) *Set {
	s := &Set{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *Set) Contains(v string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *Set) Values() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.items...)
}

func (s *Set) Clear() {
	s.items = s.items[:0]
	clear(s.index)
}

func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}
