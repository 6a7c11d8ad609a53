// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// State capability: one mutable cell per handler invocation.
// The handle grants read/write access to the cell; the cell itself lives
// in the handler frame and is reachable only through the handle.

// State is the handle for one mutable cell of type S.
// A State handle satisfies [Cell].
type State[S any] struct {
	sc *scope
}

// Get reads the current cell value.
func (h *State[S]) Get() Eff[S] {
	return performOp[S](getOp[S]{sc: h.sc})
}

// Set replaces the cell value.
func (h *State[S]) Set(v S) Eff[struct{}] {
	return performOp[struct{}](putOp[S]{sc: h.sc, value: v})
}

// Modify applies f to the cell and returns the new value.
func (h *State[S]) Modify(f func(S) S) Eff[S] {
	return performOp[S](modifyOp[S]{sc: h.sc, f: f})
}

type getOp[S any] struct {
	sc *scope
}

func (o getOp[S]) opScope() *scope { return o.sc }
func (o getOp[S]) opName() string  { return "Get" }

func (getOp[S]) applyCell(cell *S) (Resumed, bool) {
	return *cell, true
}

type putOp[S any] struct {
	sc    *scope
	value S
}

func (o putOp[S]) opScope() *scope { return o.sc }
func (o putOp[S]) opName() string  { return "Set" }

func (o putOp[S]) applyCell(cell *S) (Resumed, bool) {
	*cell = o.value
	return struct{}{}, true
}

type modifyOp[S any] struct {
	sc *scope
	f  func(S) S
}

func (o modifyOp[S]) opScope() *scope { return o.sc }
func (o modifyOp[S]) opName() string  { return "Modify" }

func (o modifyOp[S]) applyCell(cell *S) (Resumed, bool) {
	*cell = o.f(*cell)
	return *cell, true
}

// GetState fuses Get + Bind: reads the cell, passes the value to f.
func GetState[S, B any](h *State[S], f func(S) Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = getOp[S]{sc: h.sc}
		m.f = f
		m.k = k
		m.resume = bindMarkerResume[S, B]
		return m
	}
}

// PutState fuses Set + Then: writes the cell, then runs next.
func PutState[S, B any](h *State[S], v S, next Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = putOp[S]{sc: h.sc, value: v}
		m.f = next
		m.k = k
		m.resume = thenMarkerResume[B]
		return m
	}
}

// ModifyState fuses Modify + Bind: updates the cell, passes the new value
// to then.
func ModifyState[S, B any](h *State[S], f func(S) S, then func(S) Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = modifyOp[S]{sc: h.sc, f: f}
		m.f = then
		m.k = k
		m.resume = bindMarkerResume[S, B]
		return m
	}
}

// cellFrame owns the cell for one State handler invocation.
type cellFrame[S any] struct {
	sc   *scope
	cell S
}

func (f *cellFrame[S]) tag() *scope { return f.sc }
func (f *cellFrame[S]) close()      { f.sc.close() }

func (f *cellFrame[S]) dispatch(op Operation) (Resumed, bool) {
	if co, ok := op.(interface {
		applyCell(cell *S) (Resumed, bool)
	}); ok {
		return co.applyCell(&f.cell)
	}
	unhandledOperation("State")
	return nil, false
}

// RunState runs body with a fresh cell seeded to initial and returns the
// body's result paired with the final cell value.
func RunState[S, A any](initial S, body func(*State[S]) Eff[A]) Eff[Pair[A, S]] {
	return func(k func(Pair[A, S]) Resumed) Resumed {
		f := &cellFrame[S]{sc: newScope(KindState), cell: initial}
		r := body(&State[S]{sc: f.sc})(toResumed[A])
		return driveScoped(r, f, func(v Resumed) Pair[A, S] {
			return Pair[A, S]{Fst: completed[A](v), Snd: f.cell}
		}, k)
	}
}

// EvalState runs body with a fresh cell and returns only the body's result.
func EvalState[S, A any](initial S, body func(*State[S]) Eff[A]) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		f := &cellFrame[S]{sc: newScope(KindState), cell: initial}
		r := body(&State[S]{sc: f.sc})(toResumed[A])
		return driveScoped(r, f, completed[A], k)
	}
}

// ExecState runs body with a fresh cell and returns only the final cell
// value.
func ExecState[S, A any](initial S, body func(*State[S]) Eff[A]) Eff[S] {
	return func(k func(S) Resumed) Resumed {
		f := &cellFrame[S]{sc: newScope(KindState), cell: initial}
		r := body(&State[S]{sc: f.sc})(toResumed[A])
		return driveScoped(r, f, func(Resumed) S { return f.cell }, k)
	}
}
