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

package mkerr

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Code returns the error code of the given error,
// WARN: DO NOT use this for nil error,
// which is always errUnexpected's code
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	if cause, ok := cause.(toolkitError); ok {
		return cause.code()
	}
	return errUnexpected.code()
}

// IsRetryable reports whether the error carries the retryable flag.
func IsRetryable(err error) bool {
	return Code(err)&retryableFlag != 0
}

// WrapErrMemoryExhausted wraps ErrMemoryExhausted with the requested size.
func WrapErrMemoryExhausted(size int, msg ...string) error {
	err := errors.Wrapf(ErrMemoryExhausted, "size=%d", size)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "; "))
	}
	return err
}

// WrapErrElementNotFound wraps ErrElementNotFound with the missing key.
func WrapErrElementNotFound(key string, msg ...string) error {
	err := errors.Wrapf(ErrElementNotFound, "key=%s", key)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "; "))
	}
	return err
}

// WrapErrParameterInvalid wraps ErrParameterInvalid with the expected and
// actual values.
func WrapErrParameterInvalid(expected, actual any, msg ...string) error {
	err := errors.Wrapf(ErrParameterInvalid, "expected=%v, actual=%v", expected, actual)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "; "))
	}
	return err
}
