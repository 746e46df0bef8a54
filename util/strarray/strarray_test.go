// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package strarray

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	var a StringArray
	assert.Zero(t, a.Count())
	assert.Zero(t, a.Capacity())

	a.Add("-O2")
	assert.True(t, a.Contains("-O2"))
	assert.Equal(t, 1, a.Count())

	a.Add("-O2")
	assert.Equal(t, 2, a.Count())
	assert.Equal(t, []string{"-O2", "-O2"}, a.Strings())
}

func TestGrowth(t *testing.T) {
	var a StringArray
	for i := 0; i < 16; i++ {
		a.Add(fmt.Sprintf("arg%d", i))
		assert.Equal(t, initialCapacity, a.Capacity())
	}

	a.Add("arg16")
	assert.Equal(t, 2*initialCapacity, a.Capacity())
	assert.Equal(t, 17, a.Count())
	for i := 0; i < 17; i++ {
		assert.Equal(t, fmt.Sprintf("arg%d", i), a.Get(i))
	}
}

func TestAddUnique(t *testing.T) {
	var a StringArray
	a.AddUnique("-lm")
	a.AddUnique("-lc")
	a.AddUnique("-lm")
	assert.Equal(t, 2, a.Count())
	assert.Equal(t, []string{"-lm", "-lc"}, a.Strings())
}

func TestAddAll(t *testing.T) {
	a := New("a", "b")
	a.AddAll(New("b", "c"))
	assert.Equal(t, []string{"a", "b", "b", "c"}, a.Strings())
}

func TestAddAllSelf(t *testing.T) {
	a := New("x", "y")
	a.AddAll(a)
	assert.Equal(t, []string{"x", "y", "x", "y"}, a.Strings())
}

func TestAddAllUnique(t *testing.T) {
	a := New("a", "b")
	a.AddAllUnique(New("b", "c", "c", "a"))
	assert.Equal(t, []string{"a", "b", "c"}, a.Strings())
}

func TestZeroValueNotShared(t *testing.T) {
	var empty StringArray
	a, b := empty, empty
	a.Add("only-in-a")

	assert.Zero(t, empty.Count())
	assert.Zero(t, b.Count())
	assert.False(t, b.Contains("only-in-a"))
}

func TestEqual(t *testing.T) {
	assert.True(t, New().Equal(StringArray{}))
	assert.True(t, New("a", "b").Equal(New("a", "b")))
	assert.False(t, New("a", "b").Equal(New("b", "a")))
	assert.False(t, New("a").Equal(New("a", "a")))
}

func TestUnique(t *testing.T) {
	a := New("a", "b", "a", "c", "b")
	assert.Equal(t, []string{"a", "b", "c"}, a.Unique().Strings())
	// original is untouched
	assert.Equal(t, 5, a.Count())
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", StringArray{}.Join("/"))
	assert.Equal(t, "solo", New("solo").Join(","))
	assert.Equal(t, "a,b,c", New("a", "b", "c").Join(","))
}

func TestStringsView(t *testing.T) {
	a := New("a", "b")
	view := append(a.Strings(), "c")

	assert.Equal(t, 2, a.Count())
	assert.Len(t, view, 3)
	assert.False(t, a.Contains("c"))
}
