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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svlang/svfront/internal/arena"
)

func TestPointers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[int]

	p1 := a.New(5)
	assert.Equal(5, *p1.In(&a))

	for i := range 16 {
		a.New(i + 5)
	}
	assert.Equal(5, *p1.In(&a))
	assert.False(p1.Nil())
	assert.True(arena.Pointer[int](0).Nil())
}

func TestSmallSlice(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var s arena.SmallSlice[int]
	for i := range 20 {
		s.Push(i)
	}
	assert.Equal(20, s.Len())
	for i := range 20 {
		assert.Equal(i, s.At(i))
	}

	var dst arena.Arena[int]
	ptrs := arena.CopyInto(&s, &dst)
	assert.Len(ptrs, 20)
	for i, p := range ptrs {
		assert.Equal(i, *p.In(&dst))
	}
}

func TestSmallMapAndSet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var m arena.SmallMap[string, int]
	for i, name := range []string{"a", "b", "c", "d", "e", "f"} {
		m.Set(name, i)
	}
	v, ok := m.Get("e")
	assert.True(ok)
	assert.Equal(4, v)
	_, ok = m.Get("z")
	assert.False(ok)
	assert.Equal(6, m.Len())

	var set arena.SmallSet[string]
	set.Add("foo")
	set.Add("bar")
	assert.True(set.Has("foo"))
	set.Delete("foo")
	assert.False(set.Has("foo"))
	assert.True(set.Has("bar"))
}
