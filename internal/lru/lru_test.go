// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEviction(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	_, ok := c.Get("a")
	require.True(t, ok)
	c.Put("c", 3)

	_, ok = c.Get("b")
	require.False(t, ok, "least recently used entry should be evicted")
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 2, c.Len())
}

func TestPutKeepsFirst(t *testing.T) {
	c := New[int, string](0)
	c.Put(1, "one")
	c.Put(1, "uno")
	v, _ := c.Get(1)
	require.Equal(t, "one", v)

	c.Del(1)
	_, ok := c.Get(1)
	require.False(t, ok)

	c.Put(2, "two")
	c.Purge()
	require.Equal(t, 0, c.Len())
}
