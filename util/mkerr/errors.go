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

// Package mkerr holds the coded errors shared by the mkforge toolkit.
package mkerr

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const retryableFlag = 1 << 16

// Define leaf errors here,
// check whether an existing error fits before adding a new one.
var (
	// Memory related
	ErrMemoryExhausted = newToolkitError("virtual memory exhausted", 1, false)

	// Collection related
	ErrElementNotFound = newToolkitError("element not found", 100, false)

	// Parameter related
	ErrParameterInvalid = newToolkitError("invalid parameter", 200, false)

	// Do NOT export this,
	// kept only for converting unknown errors to toolkitError
	errUnexpected = newToolkitError("unexpected error", (1<<16)-1, false)
)

type toolkitError struct {
	msg     string
	errCode int32
}

func newToolkitError(msg string, code int32, retriable bool) toolkitError {
	if retriable {
		code |= retryableFlag
	}
	return toolkitError{
		msg:     msg,
		errCode: code,
	}
}

func (e toolkitError) code() int32 {
	return e.errCode
}

func (e toolkitError) Error() string {
	return e.msg
}

func (e toolkitError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(toolkitError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

type multiErrors struct {
	errs []error
}

func (e multiErrors) Unwrap() error {
	if len(e.errs) <= 1 {
		return nil
	}
	// cause of multi errors is defined as the last error
	if len(e.errs) == 2 {
		return e.errs[1]
	}

	return multiErrors{
		errs: e.errs[1:],
	}
}

func (e multiErrors) Error() string {
	final := e.errs[0]
	for i := 1; i < len(e.errs); i++ {
		final = errors.Wrap(e.errs[i], final.Error())
	}
	return final.Error()
}

func (e multiErrors) Is(err error) bool {
	for _, item := range e.errs {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

// Combine merges the non-nil errors into one, nil when all are nil.
func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	if len(errs) == 0 {
		return nil
	}
	return multiErrors{
		errs,
	}
}
