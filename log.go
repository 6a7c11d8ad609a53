// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Log capability: accumulating output of type W, collected by the
// handler and returned when the scope closes. Observing or filtering a
// sub-computation's output is done by nesting another RunLog scope
// around it, so no separate listen or censor operations exist.

// Log is the handle for one output accumulator.
type Log[W any] struct {
	sc *scope
}

// Tell appends w to the accumulated output.
func (h *Log[W]) Tell(w W) Eff[struct{}] {
	return performOp[struct{}](tellOp[W]{sc: h.sc, value: w})
}

type tellOp[W any] struct {
	sc    *scope
	value W
}

func (o tellOp[W]) opScope() *scope { return o.sc }
func (o tellOp[W]) opName() string  { return "Tell" }

func (o tellOp[W]) applyLog(out *[]W) (Resumed, bool) {
	*out = append(*out, o.value)
	return struct{}{}, true
}

// TellLog fuses Tell + Then: appends w, then runs next.
func TellLog[W, B any](h *Log[W], w W, next Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = tellOp[W]{sc: h.sc, value: w}
		m.f = next
		m.k = k
		m.resume = thenMarkerResume[B]
		return m
	}
}

type logFrame[W any] struct {
	sc  *scope
	out []W
}

func (f *logFrame[W]) tag() *scope { return f.sc }
func (f *logFrame[W]) close()      { f.sc.close() }

func (f *logFrame[W]) dispatch(op Operation) (Resumed, bool) {
	if lo, ok := op.(interface {
		applyLog(out *[]W) (Resumed, bool)
	}); ok {
		return lo.applyLog(&f.out)
	}
	unhandledOperation("Log")
	return nil, false
}

// RunLog runs body with a fresh accumulator and returns the body's
// result paired with everything told.
func RunLog[W, A any](body func(*Log[W]) Eff[A]) Eff[Pair[A, []W]] {
	return func(k func(Pair[A, []W]) Resumed) Resumed {
		f := &logFrame[W]{sc: newScope(KindLog)}
		r := body(&Log[W]{sc: f.sc})(toResumed[A])
		return driveScoped(r, f, func(v Resumed) Pair[A, []W] {
			return Pair[A, []W]{Fst: completed[A](v), Snd: f.out}
		}, k)
	}
}

// ExecLog runs body with a fresh accumulator and returns only the output.
func ExecLog[W, A any](body func(*Log[W]) Eff[A]) Eff[[]W] {
	return func(k func([]W) Resumed) Resumed {
		f := &logFrame[W]{sc: newScope(KindLog)}
		r := body(&Log[W]{sc: f.sc})(toResumed[A])
		return driveScoped(r, f, func(Resumed) []W { return f.out }, k)
	}
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
