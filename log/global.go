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

// Package log wraps zap with a process-global logger shared by all
// toolkit packages. The embedding tool may install its own logger via
// ReplaceGlobals; until then a console logger writing to stderr is used.
package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalL atomic.Pointer[zap.Logger]

func init() {
	globalL.Store(newDefaultLogger())
}

func newDefaultLogger() *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)
	return zap.New(core, zap.AddCallerSkip(1))
}

// L returns the global logger.
func L() *zap.Logger {
	return globalL.Load()
}

// ReplaceGlobals swaps the global logger and returns a function that
// restores the previous one. Intended for the embedding tool's setup
// code and for tests.
func ReplaceGlobals(logger *zap.Logger) func() {
	prev := globalL.Swap(logger)
	return func() { globalL.Store(prev) }
}

// With creates a child logger with the given fields attached.
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// Debug logs a message at debug level.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info logs a message at info level.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn logs a message at warn level.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error logs a message at error level.
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Fatal logs a message at fatal level, then terminates the process
// with exit status 1.
func Fatal(msg string, fields ...zap.Field) {
	L().Fatal(msg, fields...)
}
