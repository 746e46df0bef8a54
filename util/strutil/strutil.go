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

// Package strutil holds the text helpers used alongside strarray.
package strutil

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// formatBufferSize is the initial render buffer; fmt grows it as needed
// until the full output fits.
const formatBufferSize = 100

// EndsWith reports whether text's trailing bytes equal suffix. An empty
// suffix always matches; a suffix longer than text never does.
func EndsWith(text, suffix string) bool {
	return len(text) >= len(suffix) && text[len(text)-len(suffix):] == suffix
}

// Format renders a printf-style format into a freshly allocated string
// sized to the rendered length.
func Format(format string, args ...any) string {
	buf := make([]byte, 0, formatBufferSize)
	return string(fmt.Appendf(buf, format, args...))
}

// Stringify coerces mixed scalar values into their command-line text
// form, for callers assembling option lists out of non-string settings.
func Stringify(values ...any) []string {
	return lo.Map(values, func(v any, _ int) string {
		return cast.ToString(v)
	})
}
