// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

import "sync/atomic"

// Probe observes scope lifecycle events. Implementations export the
// events to whatever backend they like (a metrics registry, a tracer);
// the core stays dependency-free. All callbacks run synchronously on the
// driving goroutine and must not perform capability operations.
type Probe interface {
	// ScopeOpened fires when a handler invocation mints a scope.
	ScopeOpened(kind Kind, id uint64)
	// ScopeClosed fires when the scope is torn down, at most once per scope.
	ScopeClosed(kind Kind, id uint64)
	// OpDispatched fires when a handler claims an operation.
	OpDispatched(kind Kind, name string)
	// ScopeViolation fires with the fault message immediately before the
	// runtime aborts a computation for a discipline violation.
	ScopeViolation(msg string)
}

var activeProbe atomic.Pointer[Probe]

// SetProbe installs a process-wide probe. Passing nil removes it.
// Replacing the probe while computations are running is racy with respect
// to in-flight events and intended for test setup and program start.
func SetProbe(p Probe) {
	if p == nil {
		activeProbe.Store(nil)
		return
	}
	activeProbe.Store(&p)
}

func currentProbe() Probe {
	bp := activeProbe.Load()
	if bp == nil {
		return nil
	}
	return *bp
}
