// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Composed handler: one frame, one scope, several handles. The body
// receives every constituent handle of the same invocation; operations on
// any of them are claimed by the shared frame, which avoids one drive
// loop per capability on multi-capability hot paths.

// cellRaiseFrame owns a cell and a failure channel under one scope.
type cellRaiseFrame[S, E, A any] struct {
	sc   *scope
	cell S
}

func (f *cellRaiseFrame[S, E, A]) tag() *scope { return f.sc }
func (f *cellRaiseFrame[S, E, A]) close()      { f.sc.close() }

func (f *cellRaiseFrame[S, E, A]) dispatch(op Operation) (Resumed, bool) {
	if co, ok := op.(interface {
		applyCell(cell *S) (Resumed, bool)
	}); ok {
		return co.applyCell(&f.cell)
	}
	if t, ok := op.(throwOp[E]); ok {
		return Pair[Either[E, A], S]{Fst: Left[E, A](t.err), Snd: f.cell}, false
	}
	unhandledOperation("StateExcept")
	return nil, false
}

// RunStateExcept runs body with a State handle and an Exception handle
// minted under one scope. The final cell value is returned even when the
// body throws; the state up to the throw survives.
func RunStateExcept[S, E, A any](initial S, body func(*State[S], *Exception[E]) Eff[A]) Eff[Pair[Either[E, A], S]] {
	return func(k func(Pair[Either[E, A], S]) Resumed) Resumed {
		f := &cellRaiseFrame[S, E, A]{sc: newScope(KindComposed), cell: initial}
		r := body(&State[S]{sc: f.sc}, &Exception[E]{sc: f.sc})(toResumed[A])
		return driveScoped(r, f, func(v Resumed) Pair[Either[E, A], S] {
			return Pair[Either[E, A], S]{Fst: Right[E, A](completed[A](v)), Snd: f.cell}
		}, k)
	}
}

// EvalStateExcept runs a State+Exception body and returns only the Either
// result.
func EvalStateExcept[S, E, A any](initial S, body func(*State[S], *Exception[E]) Eff[A]) Eff[Either[E, A]] {
	return Map(RunStateExcept(initial, body), func(p Pair[Either[E, A], S]) Either[E, A] {
		return p.Fst
	})
}

// ExecStateExcept runs a State+Exception body and returns only the final
// cell value.
func ExecStateExcept[S, E, A any](initial S, body func(*State[S], *Exception[E]) Eff[A]) Eff[S] {
	return Map(RunStateExcept(initial, body), func(p Pair[Either[E, A], S]) S {
		return p.Snd
	})
}
