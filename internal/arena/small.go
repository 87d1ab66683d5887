// Copyright 2020-2026 The SVFront Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arena

// smallInline is the number of elements a [SmallSlice] holds before it
// spills to the heap. Go generics have no way to parameterize this by a
// caller-supplied constant, so it is fixed at a size chosen to cover the
// common cases in this codebase: a syntax list's children, a scope's
// members, and a macro call's arguments are all short in the overwhelming
// majority of real source files.
const smallInline = 4

// SmallSlice is a stack-first growable buffer.
//
// For the very common case of a list of syntax-tree children, symbol
// members, or macro-argument tokens whose final length is not known until
// after it has been built, allocating a heap slice up front (or growing one
// element at a time) is wasted work: most such lists are short. SmallSlice
// holds up to [smallInline] elements inline and only spills to the heap once
// a caller tries to grow past that.
//
// The zero value is an empty SmallSlice ready to use.
type SmallSlice[T any] struct {
	inline [smallInline]T
	spill  []T
	len    int
}

// Len returns the number of elements pushed onto s.
func (s *SmallSlice[T]) Len() int {
	return s.len
}

// Push appends v to s, spilling to the heap once the inline capacity is
// exhausted.
func (s *SmallSlice[T]) Push(v T) {
	if s.spill == nil && s.len < smallInline {
		s.inline[s.len] = v
		s.len++
		return
	}
	if s.spill == nil {
		s.spill = append(make([]T, 0, smallInline*2), s.inline[:]...)
	}
	s.spill = append(s.spill, v)
	s.len++
}

// At returns the ith element pushed onto s.
func (s *SmallSlice[T]) At(i int) T {
	if s.spill != nil {
		return s.spill[i]
	}
	return s.inline[i]
}

// Slice returns a snapshot of s's contents as an ordinary Go slice. The
// returned slice aliases the SmallSlice's storage and is invalidated by the
// next Push.
func (s *SmallSlice[T]) Slice() []T {
	if s.spill != nil {
		return s.spill
	}
	return s.inline[:s.len]
}

// CopyInto permanently materializes s's contents in a, allocating exactly
// the final size from the arena rather than the buffer's spare inline or
// spill capacity.
func CopyInto[T any](s *SmallSlice[T], a *Arena[T]) []Pointer[T] {
	out := make([]Pointer[T], s.Len())
	for i, v := range s.Slice() {
		out[i] = a.New(v)
	}
	return out
}

// SmallSet is a hash set with inline capacity, spilling to a heap-allocated
// map past [smallInline] entries, for small, short-lived membership tests.
// Nothing else in this module uses it at present; the preprocessor's
// currently-expanding guard is an ordinary Go map.
type SmallSet[K comparable] struct {
	inline [smallInline]K
	len    int
	spill  map[K]struct{}
}

// Has reports whether k is a member of the set.
func (s *SmallSet[K]) Has(k K) bool {
	if s.spill != nil {
		_, ok := s.spill[k]
		return ok
	}
	for i := range s.len {
		if s.inline[i] == k {
			return true
		}
	}
	return false
}

// Add inserts k into the set. It is a no-op if k is already present.
func (s *SmallSet[K]) Add(k K) {
	if s.Has(k) {
		return
	}
	if s.spill == nil && s.len < smallInline {
		s.inline[s.len] = k
		s.len++
		return
	}
	if s.spill == nil {
		s.spill = make(map[K]struct{}, smallInline*2)
		for i := range s.len {
			s.spill[s.inline[i]] = struct{}{}
		}
	}
	s.spill[k] = struct{}{}
	s.len++
}

// Delete removes k from the set, if present.
func (s *SmallSet[K]) Delete(k K) {
	if s.spill != nil {
		delete(s.spill, k)
		return
	}
	for i := range s.len {
		if s.inline[i] == k {
			s.inline[i] = s.inline[s.len-1]
			s.len--
			return
		}
	}
}

// SmallMap is a hash map with inline capacity, spilling to a heap-allocated
// map past [smallInline] entries, for tables such as scope name-tables where
// the vast majority of SystemVerilog scopes (a UDP's ports, a clocking
// block's items) declare only a handful of members. Nothing else in this
// module uses it at present; scope name-tables are ordinary Go maps.
type SmallMap[K comparable, V any] struct {
	keys  [smallInline]K
	vals  [smallInline]V
	len   int
	spill map[K]V
}

// Get looks up k, reporting whether it was found.
func (m *SmallMap[K, V]) Get(k K) (V, bool) {
	if m.spill != nil {
		v, ok := m.spill[k]
		return v, ok
	}
	for i := range m.len {
		if m.keys[i] == k {
			return m.vals[i], true
		}
	}
	var zero V
	return zero, false
}

// Set inserts or overwrites the value associated with k.
func (m *SmallMap[K, V]) Set(k K, v V) {
	if m.spill != nil {
		m.spill[k] = v
		return
	}
	for i := range m.len {
		if m.keys[i] == k {
			m.vals[i] = v
			return
		}
	}
	if m.len < smallInline {
		m.keys[m.len] = k
		m.vals[m.len] = v
		m.len++
		return
	}
	m.spill = make(map[K]V, smallInline*2)
	for i := range m.len {
		m.spill[m.keys[i]] = m.vals[i]
	}
	m.spill[k] = v
}

// Len returns the number of entries in m.
func (m *SmallMap[K, V]) Len() int {
	if m.spill != nil {
		return len(m.spill)
	}
	return m.len
}

// All iterates over the entries of m in unspecified order.
func (m *SmallMap[K, V]) All(yield func(K, V) bool) {
	if m.spill != nil {
		for k, v := range m.spill {
			if !yield(k, v) {
				return
			}
		}
		return
	}
	for i := range m.len {
		if !yield(m.keys[i], m.vals[i]) {
			return
		}
	}
}
