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
	"os"
	"strings"

	"github.com/mkforge/toolkit/util/memutil"
)

// FromString splits text on any character in delims and returns the
// tokens as a new array. Runs of delimiters collapse, so no empty
// tokens are produced; text made of nothing but delimiters yields an
// empty array. Each token is an independent copy that does not pin the
// caller's text; token lifetime is left to the process, which is fine
// for the short-lived tool invocations this library serves.
func FromString(text, delims string) StringArray {
	var array StringArray
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	}) {
		array.Add(memutil.Duplicate(tok))
	}
	return array
}

// FromPath splits a path list on the host platform's separator, ";" on
// Windows and ":" elsewhere. The separator is fixed per platform so
// callers always get their native path-list syntax. An empty path
// yields the empty array without allocating.
func FromPath(path string) StringArray {
	if path == "" {
		return StringArray{}
	}
	return FromString(path, string(os.PathListSeparator))
}
