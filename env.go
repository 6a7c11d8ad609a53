// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Env capability: read-only access to an environment value fixed at
// handler entry.

// Env is the handle for one environment of type E.
type Env[E any] struct {
	sc *scope
}

// Ask reads the environment.
func (h *Env[E]) Ask() Eff[E] {
	return performOp[E](askOp[E]{sc: h.sc})
}

type askOp[E any] struct {
	sc *scope
}

func (o askOp[E]) opScope() *scope { return o.sc }
func (o askOp[E]) opName() string  { return "Ask" }

func (askOp[E]) applyEnv(env *E) (Resumed, bool) {
	return *env, true
}

// AskEnv fuses Ask + Bind: reads the environment, passes it to f.
func AskEnv[E, B any](h *Env[E], f func(E) Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = askOp[E]{sc: h.sc}
		m.f = f
		m.k = k
		m.resume = bindMarkerResume[E, B]
		return m
	}
}

// MapEnv fuses Ask + Map: reads the environment, applies projection f.
func MapEnv[E, A any](h *Env[E], f func(E) A) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		m := acquireMarker()
		m.op = askOp[E]{sc: h.sc}
		m.f = f
		m.k = k
		m.resume = mapMarkerResume[E, A]
		return m
	}
}

type envFrame[E any] struct {
	sc  *scope
	env E
}

func (f *envFrame[E]) tag() *scope { return f.sc }
func (f *envFrame[E]) close()      { f.sc.close() }

func (f *envFrame[E]) dispatch(op Operation) (Resumed, bool) {
	if eo, ok := op.(interface {
		applyEnv(env *E) (Resumed, bool)
	}); ok {
		return eo.applyEnv(&f.env)
	}
	unhandledOperation("Env")
	return nil, false
}

// WithEnv runs body with a fresh environment handle bound to env.
func WithEnv[E, A any](env E, body func(*Env[E]) Eff[A]) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		f := &envFrame[E]{sc: newScope(KindEnv), env: env}
		r := body(&Env[E]{sc: f.sc})(toResumed[A])
		return driveScoped(r, f, completed[A], k)
	}
}
