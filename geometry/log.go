// Copyright 2026 The Planetaria Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geometry

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. It is read on every degenerate-input
// path, so it is accessed atomically rather than under a lock.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by geometry and the packages built on
// it. By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - Debug: degenerate input that was repaired (collinear tangents,
//     zero-length arcs).
//   - Error: lookups of unknown colliders.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
