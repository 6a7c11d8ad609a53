// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Resource safety combinators. Bracket and OnError cover the failure
// channel they introduce; Ensure covers unwinds on channels they cannot
// see, because a finalizer frame runs its cleanup whenever any unwind
// passes through it.

// Bracket acquires a resource, runs use with it and a fresh failure
// channel, and releases the resource whether or not use threw on that
// channel. Returns Either of the thrown value or use's result.
func Bracket[E, R, A any](
	acquire Eff[R],
	release func(R) Eff[struct{}],
	use func(R, *Exception[E]) Eff[A],
) Eff[Either[E, A]] {
	return Bind(acquire, func(resource R) Eff[Either[E, A]] {
		return Bind(Try(func(h *Exception[E]) Eff[A] {
			return use(resource, h)
		}), func(result Either[E, A]) Eff[Either[E, A]] {
			return Then(release(resource), Pure(result))
		})
	})
}

// OnError runs body with a fresh failure channel; if body throws on it,
// cleanup runs and the error is rethrown on outer. On success the result
// passes through and cleanup never runs.
func OnError[E, A any](
	outer Raiser[E],
	body func(*Exception[E]) Eff[A],
	cleanup func(E) Eff[struct{}],
) Eff[A] {
	return Bind(Try(body), func(r Either[E, A]) Eff[A] {
		if err, ok := r.GetLeft(); ok {
			return Then(cleanup(err), Throw[E, A](outer, err))
		}
		return Pure(completedRight(r))
	})
}

func completedRight[E, A any](r Either[E, A]) A {
	v, _ := r.GetRight()
	return v
}

// finalizerFrame claims no operations; it exists to run cleanup exactly
// once, when the body completes or when an unwind passes through.
type finalizerFrame struct {
	sc      *scope
	cleanup func()
}

func (f *finalizerFrame) tag() *scope { return f.sc }

func (f *finalizerFrame) close() {
	if f.sc.close() {
		f.cleanup()
	}
}

func (f *finalizerFrame) dispatch(op Operation) (Resumed, bool) {
	unhandledOperation("Ensure")
	return nil, false
}

// Ensure runs cleanup after body completes, and also when a throw or
// early exit on any enclosing channel unwinds through it. cleanup is a
// plain host function so that it can run during an unwind, where no
// capability is available.
func Ensure[A any](body Eff[A], cleanup func()) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		f := &finalizerFrame{sc: newScope(KindFinalizer), cleanup: cleanup}
		r := body(toResumed[A])
		return driveScoped(r, f, completed[A], k)
	}
}
