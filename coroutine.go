// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Coroutine capability: a computation that suspends by yielding an
// output and continues with the input of the next resume. The body is a
// plain effectful computation with one extra operation; suspension and
// resumption are a request/response protocol over the continuation
// substrate, not a separate thread of control.

// Coroutine states. Transitions: idle -> running -> suspended -> running
// -> ... -> done. done has no outgoing transition; resuming there is a
// protocol violation.
const (
	coIdle = iota
	coRunning
	coSuspended
	coDone
)

// Coroutine is the consumer-side handle: the right to resume one
// suspended computation.
type Coroutine[I, O, A any] struct {
	sc    *scope
	state int
	body  func(*Yield[I, O], I) Eff[A]
	k     *Affine[Resumed, Resumed]
}

// Yield is the producer-side handle, valid inside the coroutine body
// only.
type Yield[I, O any] struct {
	sc *scope
}

// Yield suspends the body and delivers out to whoever called [Resume].
// The resulting computation completes with the input of the next resume.
func (y *Yield[I, O]) Yield(out O) Eff[I] {
	return performOp[I](yieldOp[O]{sc: y.sc, value: out})
}

type yieldOp[O any] struct {
	sc    *scope
	value O
}

func (o yieldOp[O]) opScope() *scope { return o.sc }
func (o yieldOp[O]) opName() string  { return "Yield" }

// WithCoroutine mints one scope covering both sides of a coroutine: use
// runs now with the Coroutine handle; body starts on the first resume
// with the Yield handle and that resume's input as first. A coroutine
// still suspended when use completes is discarded together with its
// saved continuation.
func WithCoroutine[I, O, A, B any](
	body func(y *Yield[I, O], first I) Eff[A],
	use func(c *Coroutine[I, O, A]) Eff[B],
) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		c := &Coroutine[I, O, A]{sc: newScope(KindCoroutine), body: body}
		f := &coFrame[I, O, A]{c: c}
		r := use(c)(toResumed[B])
		return driveScoped(r, f, completed[B], k)
	}
}

// Resume advances c with input. The result is Left of the value the
// body yielded, or Right of the body's final result once it completes.
//
// A body that yields k times accepts k resumes answering Left and one
// more answering Right; any resume beyond that, a resume of a coroutine
// that is currently running, or a resume after the minting handler
// returned, aborts the computation.
func Resume[I, O, A any](c *Coroutine[I, O, A], input I) Eff[Either[O, A]] {
	return func(k func(Either[O, A]) Resumed) Resumed {
		if c.sc.closed.Load() {
			panic(reportProtocol("kap: coroutine resumed after its handler returned"))
		}
		switch c.state {
		case coDone:
			panic(reportProtocol("kap: coroutine resumed after completion"))
		case coRunning:
			panic(reportProtocol("kap: coroutine resumed while running"))
		}
		var r Resumed
		if c.state == coIdle {
			c.state = coRunning
			r = c.body(&Yield[I, O]{sc: c.sc}, input)(toResumed[A])
		} else {
			c.state = coRunning
			saved := c.k
			c.k = nil
			r = saved.Resume(input)
		}
		return driveCoroutine(c, r, k)
	}
}

// driveCoroutine trampolines the body between yields. A yield on c's
// scope suspends the body and delivers Left to the resumer. Any other
// operation of the body forwards into the resumer's context, so handles
// the body captured from its birth site keep working across
// suspensions. An unwind leaving the body marks the coroutine done and
// keeps unwinding where the resume was performed.
func driveCoroutine[I, O, A any](c *Coroutine[I, O, A], r Resumed, k func(Either[O, A]) Resumed) Resumed {
	for {
		s, ok := r.(suspension)
		if !ok {
			c.state = coDone
			return k(Right[O, A](completed[A](r)))
		}
		op := s.Op()
		if op.opScope() == c.sc {
			y, yok := op.(yieldOp[O])
			if !yok {
				unhandledOperation("Coroutine")
			}
			if p := currentProbe(); p != nil {
				p.OpDispatched(KindCoroutine, "Yield")
			}
			c.k = Once(s.Resume)
			c.state = coSuspended
			return k(Left[O, A](y.value))
		}
		if isUnwind(op) {
			c.state = coDone
			return r
		}
		inner := s
		m := acquireMarker()
		m.op = op
		m.k = func(v Resumed) Resumed {
			return driveCoroutine(c, inner.Resume(v), k)
		}
		m.resume = forwardResume
		return m
	}
}

// coFrame guards the coroutine scope during use. Yields are always
// claimed under a Resume drive, so an operation claimed here means the
// Yield handle leaked out of the body.
type coFrame[I, O, A any] struct {
	c *Coroutine[I, O, A]
}

func (f *coFrame[I, O, A]) tag() *scope { return f.c.sc }

func (f *coFrame[I, O, A]) close() {
	if f.c.sc.close() {
		if f.c.k != nil {
			f.c.k.Discard()
			f.c.k = nil
		}
	}
}

func (f *coFrame[I, O, A]) dispatch(op Operation) (Resumed, bool) {
	panic(reportViolation(op, whyStray))
}

func reportProtocol(msg string) string {
	if p := currentProbe(); p != nil {
		p.ScopeViolation(msg)
	}
	return msg
}
