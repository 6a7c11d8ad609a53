// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Top-level entry points. These are the only places a computation is
// driven with no enclosing handler: an operation surfacing here has no
// frame left to claim it, which is a scope-discipline fault.

// RunIO executes a computation that may perform host effects. It mints
// the one IO scope of the execution, hands body its handle, and drives
// the computation to completion.
//
// An operation surfacing on any other scope aborts with a fault
// diagnosing whether the handle outlived its handler or escaped it.
func RunIO[A any](body func(*IO) Eff[A]) A {
	f := &hostFrame{sc: newScope(KindIO)}
	r := body(&IO{sc: f.sc})(toResumed[A])
	for {
		s, ok := r.(suspension)
		if !ok {
			f.close()
			return completed[A](r)
		}
		op := s.Op()
		if op.opScope() == f.sc {
			if p := currentProbe(); p != nil {
				p.OpDispatched(f.sc.kind, op.opName())
			}
			v, _ := f.dispatch(op)
			r = s.Resume(v)
			continue
		}
		f.close()
		why := whyEscaped
		if op.opScope().closed.Load() {
			why = whyClosed
		}
		panic(reportViolation(op, why))
	}
}

// ExtractPure executes a computation with no open scopes at all and
// returns its plain value. The first operation to surface aborts the
// extraction before the operation takes any effect; a computation whose
// capabilities are all handled internally never reaches that point.
func ExtractPure[A any](m Eff[A]) A {
	r := m(toResumed[A])
	if s, ok := r.(suspension); ok {
		op := s.Op()
		why := whyPure
		if op.opScope().closed.Load() {
			why = whyClosed
		}
		panic(reportViolation(op, why))
	}
	return completed[A](r)
}
