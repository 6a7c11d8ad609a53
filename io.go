// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

import "fmt"

// IO capability: permission to perform host-level effects. Minted once
// per top-level execution by [RunIO]; it is the only channel through
// which unconstrained effects enter the system.

// IO is the host-effect handle. An IO handle satisfies [Host].
type IO struct {
	sc *scope
}

func (h *IO) ioHandle() *IO { return h }

type liftOp struct {
	sc *scope
	f  func() Resumed
}

func (o liftOp) opScope() *scope { return o.sc }
func (o liftOp) opName() string  { return "LiftIO" }

func (o liftOp) applyHost() Resumed { return o.f() }

// LiftIO runs a host action when the operation reaches the top-level
// entry, resuming the computation with the action's result.
func LiftIO[A any](h Host, f func() A) Eff[A] {
	sc := h.ioHandle().sc
	return performOp[A](liftOp{sc: sc, f: func() Resumed { return f() }})
}

// Printf writes to standard output through the host-effect channel.
func Printf(h Host, format string, args ...any) Eff[struct{}] {
	sc := h.ioHandle().sc
	return performOp[struct{}](liftOp{sc: sc, f: func() Resumed {
		fmt.Printf(format, args...)
		return struct{}{}
	}})
}

// hostFrame interprets host-effect operations at the top-level entry.
type hostFrame struct {
	sc *scope
}

func (f *hostFrame) tag() *scope { return f.sc }
func (f *hostFrame) close()      { f.sc.close() }

func (f *hostFrame) dispatch(op Operation) (Resumed, bool) {
	if ho, ok := op.(interface{ applyHost() Resumed }); ok {
		return ho.applyHost(), true
	}
	unhandledOperation("IO")
	return nil, false
}
