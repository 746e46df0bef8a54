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

// Package strarray provides the ordered, growable string collection the
// mkforge tools use to assemble command lines, search paths and option
// lists.
package strarray

import (
	"strings"

	"github.com/samber/lo"
)

// initialCapacity is the backing size installed by the first insertion
// into an empty array; afterwards capacity doubles on demand.
const initialCapacity = 16

// StringArray is an ordered, growable collection of strings. The zero
// value is the empty array and is ready to use; growth always installs
// a fresh backing slice, so a zero-value array shared by value is never
// mutated in place. Not safe for concurrent mutation.
type StringArray struct {
	elems []string
}

// New returns an array holding elems in order.
func New(elems ...string) StringArray {
	var array StringArray
	for _, s := range elems {
		array.Add(s)
	}
	return array
}

// Count returns the number of elements.
func (a StringArray) Count() int {
	return len(a.elems)
}

// Capacity returns the allocated size of the backing storage.
func (a StringArray) Capacity() int {
	return cap(a.elems)
}

// Get returns the element at index i. Out-of-range indices panic, as
// with a plain slice.
func (a StringArray) Get(i int) string {
	return a.elems[i]
}

// Strings returns a view of the elements in insertion order. The view
// is capped so appends through it cannot alias the array's storage.
func (a StringArray) Strings() []string {
	return a.elems[:len(a.elems):len(a.elems)]
}

func (a *StringArray) grow() {
	size := initialCapacity
	if cap(a.elems) != 0 {
		size = cap(a.elems) * 2
	}
	elems := make([]string, len(a.elems), size)
	copy(elems, a.elems)
	a.elems = elems
}

// Add appends s as the new last element, doubling capacity when full.
// Existing elements keep their order and positions across growth.
func (a *StringArray) Add(s string) {
	if len(a.elems) == cap(a.elems) {
		a.grow()
	}
	a.elems = append(a.elems, s)
}

// AddUnique appends s unless an equal element is already present. The
// first occurrence keeps its position; later duplicates are dropped.
func (a *StringArray) AddUnique(s string) {
	if !a.Contains(s) {
		a.Add(s)
	}
}

// AddAll appends every element of other in order, duplicates included.
// other is received by value, so appending an array to itself iterates
// a fixed snapshot of the original elements.
func (a *StringArray) AddAll(other StringArray) {
	for _, s := range other.elems {
		a.Add(s)
	}
}

// AddAllUnique applies AddUnique to every element of other in order.
func (a *StringArray) AddAllUnique(other StringArray) {
	for _, s := range other.elems {
		a.AddUnique(s)
	}
}

// Contains reports whether an element equal to s is present.
func (a StringArray) Contains(s string) bool {
	for _, e := range a.elems {
		if e == s {
			return true
		}
	}
	return false
}

// Equal reports whether a and other hold the same elements in the same
// order.
func (a StringArray) Equal(other StringArray) bool {
	if len(a.elems) != len(other.elems) {
		return false
	}
	for i := range a.elems {
		if a.elems[i] != other.elems[i] {
			return false
		}
	}
	return true
}

// Unique returns a new array with duplicates removed, keeping the first
// occurrence of each element in its original relative position.
func (a StringArray) Unique() StringArray {
	return StringArray{elems: lo.Uniq(a.elems)}
}

// Join concatenates the elements with sep between consecutive elements
// and none at the ends. An empty array yields "".
func (a StringArray) Join(sep string) string {
	if len(a.elems) == 0 {
		return ""
	}
	return strings.Join(a.elems, sep)
}
