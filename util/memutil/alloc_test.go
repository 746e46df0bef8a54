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

package memutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkforge/toolkit/util/mkerr"
)

func TestTryAllocate(t *testing.T) {
	buf, err := TryAllocate(64)
	require.NoError(t, err)
	assert.Len(t, buf, 64)
	for _, b := range buf {
		assert.Zero(t, b)
	}

	// zero and negative sizes round up to a single byte
	buf, err = TryAllocate(0)
	require.NoError(t, err)
	assert.Len(t, buf, 1)

	buf, err = TryAllocate(-5)
	require.NoError(t, err)
	assert.Len(t, buf, 1)
}

func TestTryAllocateExhausted(t *testing.T) {
	_, err := TryAllocate(math.MaxInt)
	require.Error(t, err)
	assert.ErrorIs(t, err, mkerr.ErrMemoryExhausted)
}

func TestTryReallocate(t *testing.T) {
	block := []byte("search-path")

	grown, err := TryReallocate(block, 32)
	require.NoError(t, err)
	assert.Len(t, grown, 32)
	assert.Equal(t, "search-path", string(grown[:len(block)]))
	for _, b := range grown[len(block):] {
		assert.Zero(t, b)
	}

	shrunk, err := TryReallocate(block, 6)
	require.NoError(t, err)
	assert.Equal(t, "search", string(shrunk))

	// original block is untouched either way
	assert.Equal(t, "search-path", string(block))
}

func TestAllocate(t *testing.T) {
	buf := Allocate(16)
	assert.Len(t, buf, 16)

	buf = Reallocate([]byte("abc"), 4)
	assert.Equal(t, []byte{'a', 'b', 'c', 0}, buf)
}

func TestDuplicate(t *testing.T) {
	src := "compiler-flags"
	dup := Duplicate(src[:8])
	assert.Equal(t, "compiler", dup)
	assert.Equal(t, "", Duplicate(""))
}
