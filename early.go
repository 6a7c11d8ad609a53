// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// EarlyReturn capability: payload-free structured exit from a block.
// A restricted form of Exception for control flow that carries no data.

// EarlyReturn is the handle for one structured-exit channel.
type EarlyReturn struct {
	sc *scope
}

type exitOp struct {
	sc *scope
}

func (o exitOp) opScope() *scope { return o.sc }
func (o exitOp) opName() string  { return "Exit" }
func (exitOp) unwinds()          {}

// Exit jumps out of the [WithEarlyReturn] block that minted h. The
// continuation of the exit site is never resumed.
func Exit[A any](h *EarlyReturn) Eff[A] {
	sc := h.sc
	return func(k func(A) Resumed) Resumed {
		return unwindSuspension{op: exitOp{sc: sc}}
	}
}

type exitFrame struct {
	sc *scope
}

func (f *exitFrame) tag() *scope { return f.sc }
func (f *exitFrame) close()      { f.sc.close() }

func (f *exitFrame) dispatch(op Operation) (Resumed, bool) {
	if _, ok := op.(exitOp); ok {
		return true, false
	}
	unhandledOperation("EarlyReturn")
	return nil, false
}

// WithEarlyReturn runs body and absorbs an [Exit] on its handle.
// The result reports whether the exit fired; execution continues after
// the handler either way.
func WithEarlyReturn(body func(*EarlyReturn) Eff[struct{}]) Eff[bool] {
	return func(k func(bool) Resumed) Resumed {
		f := &exitFrame{sc: newScope(KindEarlyReturn)}
		r := body(&EarlyReturn{sc: f.sc})(toResumed[struct{}])
		return driveScoped(r, f, func(Resumed) bool { return false }, k)
	}
}
