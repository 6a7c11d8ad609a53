// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// frame is one live handler invocation: the scope it minted plus the
// capability storage it owns. Frames exist only on the drive stack; their
// dynamic nesting is the open-scope stack of the whole execution.
type frame interface {
	tag() *scope
	// dispatch interprets an operation already claimed for this frame's
	// scope. (v, true) resumes the computation with v; (v, false) abandons
	// the rest of the body and completes the handler with v as its result.
	dispatch(op Operation) (Resumed, bool)
	close()
}

// driveScoped is the handler engine. It trampolines the body's suspensions
// against one frame:
//
//   - an operation on the frame's own scope is dispatched in place;
//   - a foreign unwind-class operation closes this frame (its continuation
//     is dead) and forwards the suspension unchanged;
//   - any other foreign operation is forwarded outward behind a marker
//     that re-enters this loop when an enclosing handler resumes it;
//   - a final value closes the frame and delivers fin(value) to k.
//
// fin converts the body's raw completion value into the handler's result
// type B, folding in frame storage where the capability calls for it.
func driveScoped[F frame, B any](r Resumed, f F, fin func(Resumed) B, k func(B) Resumed) Resumed {
	for {
		s, ok := r.(suspension)
		if !ok {
			f.close()
			return k(fin(r))
		}
		op := s.Op()
		if op.opScope() == f.tag() {
			if p := currentProbe(); p != nil {
				p.OpDispatched(f.tag().kind, op.opName())
			}
			v, resume := f.dispatch(op)
			if !resume {
				f.close()
				return k(v.(B))
			}
			r = s.Resume(v)
			continue
		}
		if isUnwind(op) {
			f.close()
			return r
		}
		inner := s
		m := acquireMarker()
		m.op = op
		m.k = func(v Resumed) Resumed {
			return driveScoped[F, B](inner.Resume(v), f, fin, k)
		}
		m.resume = forwardResume
		return m
	}
}
