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

import "sort"

// Compare establishes a total order over two strings: negative when
// a < b, zero when equal, positive when a > b.
type Compare func(a, b string) int

// Sort reorders the elements in place according to cmp. The sort is not
// stable. cmp must not mutate the array.
func (a *StringArray) Sort(cmp Compare) {
	if len(a.elems) < 2 {
		return
	}
	sort.Slice(a.elems, func(i, j int) bool {
		return cmp(a.elems[i], a.elems[j]) < 0
	})
}

// Search binary-searches for an element comparing equal to key and
// returns it with ok=true, or ("", false) when absent. The array must
// already be sorted consistently with cmp; this is not validated.
func (a StringArray) Search(key string, cmp Compare) (string, bool) {
	i := sort.Search(len(a.elems), func(i int) bool {
		return cmp(a.elems[i], key) >= 0
	})
	if i < len(a.elems) && cmp(a.elems[i], key) == 0 {
		return a.elems[i], true
	}
	return "", false
}
