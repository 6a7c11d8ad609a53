// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Exception capability: one typed failure channel per handler invocation.
// A throw abandons the rest of the body and unwinds to the [Try] that
// minted the handle, finalizing every handler frame in between.

// Exception is the handle for one failure channel of type E.
// An Exception handle satisfies [Raiser].
type Exception[E any] struct {
	sc *scope
}

func (h *Exception[E]) raiseHandle() *Exception[E] { return h }

type throwOp[E any] struct {
	sc  *scope
	err E
}

func (o throwOp[E]) opScope() *scope { return o.sc }
func (o throwOp[E]) opName() string  { return "Throw" }
func (throwOp[E]) unwinds()          {}

// Throw raises err on h's channel. The continuation of the throw site is
// never resumed; the result type A is free because no value of it is ever
// produced.
func Throw[E, A any](h Raiser[E], err E) Eff[A] {
	sc := h.raiseHandle().sc
	return func(k func(A) Resumed) Resumed {
		return unwindSuspension{op: throwOp[E]{sc: sc, err: err}}
	}
}

// raiseFrame completes with Left when its channel's throw reaches it.
type raiseFrame[E, A any] struct {
	sc *scope
}

func (f *raiseFrame[E, A]) tag() *scope { return f.sc }
func (f *raiseFrame[E, A]) close()      { f.sc.close() }

func (f *raiseFrame[E, A]) dispatch(op Operation) (Resumed, bool) {
	if t, ok := op.(throwOp[E]); ok {
		return Left[E, A](t.err), false
	}
	unhandledOperation("Exception")
	return nil, false
}

// Try runs body with a fresh failure channel. The result is Left of the
// thrown value if body threw on this channel, Right of the body's result
// otherwise. Throws on other channels pass through unhandled.
func Try[E, A any](body func(*Exception[E]) Eff[A]) Eff[Either[E, A]] {
	return func(k func(Either[E, A]) Resumed) Resumed {
		f := &raiseFrame[E, A]{sc: newScope(KindException)}
		r := body(&Exception[E]{sc: f.sc})(toResumed[A])
		return driveScoped(r, f, func(v Resumed) Either[E, A] {
			return Right[E, A](completed[A](v))
		}, k)
	}
}

// Catch runs body and recovers from a throw on its channel with handler.
func Catch[E, A any](body func(*Exception[E]) Eff[A], handler func(E) Eff[A]) Eff[A] {
	return Bind(Try(body), func(r Either[E, A]) Eff[A] {
		return MatchEither(r, handler, Pure[A])
	})
}

// Either represents a value that is either Left (failure) or Right
// (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (failure) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}
