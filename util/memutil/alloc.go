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

// Package memutil wraps buffer allocation for the toolkit.
//
// The fallible entry points (TryAllocate, TryReallocate) report
// allocation failure as mkerr.ErrMemoryExhausted. The infallible ones
// (Allocate, Reallocate, Duplicate) keep the short-lived-tool policy of
// the surrounding suite: on failure they log a fixed diagnostic and
// terminate the process with exit status 1, so callers never check for
// a nil buffer.
package memutil

import (
	"strings"

	"github.com/mkforge/toolkit/log"
	"github.com/mkforge/toolkit/util/mkerr"
)

const outOfMemoryMsg = "virtual memory exhausted"

// TryAllocate returns a zeroed block of max(size, 1) bytes, or
// mkerr.ErrMemoryExhausted when the runtime cannot satisfy the request.
func TryAllocate(size int) (buf []byte, err error) {
	if size < 1 {
		size = 1
	}
	defer func() {
		if x := recover(); x != nil {
			buf, err = nil, mkerr.WrapErrMemoryExhausted(size)
		}
	}()
	return make([]byte, size), nil
}

// TryReallocate returns a block of max(newSize, 1) bytes holding the
// contents of block up to min(len(block), newSize); the remainder is
// zeroed. block itself is left untouched.
func TryReallocate(block []byte, newSize int) ([]byte, error) {
	buf, err := TryAllocate(newSize)
	if err != nil {
		return nil, err
	}
	copy(buf, block)
	return buf, nil
}

// Allocate is TryAllocate with the fatal failure policy.
func Allocate(size int) []byte {
	buf, err := TryAllocate(size)
	if err != nil {
		fatalExhausted(size)
	}
	return buf
}

// Reallocate is TryReallocate with the fatal failure policy.
func Reallocate(block []byte, newSize int) []byte {
	buf, err := TryReallocate(block, newSize)
	if err != nil {
		fatalExhausted(newSize)
	}
	return buf
}

// Duplicate returns a copy of text backed by its own allocation, so the
// result does not pin a larger string the argument was sliced from.
func Duplicate(text string) string {
	return strings.Clone(text)
}

func fatalExhausted(size int) {
	log.Fatal(outOfMemoryMsg, log.FieldComponent("memutil"), log.FieldSize(size))
}
