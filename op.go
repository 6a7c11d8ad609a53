// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

import "sync"

// Operation is a capability request captured in a suspension. Every
// operation carries the scope of the handle it was performed on; the
// handler whose frame owns that scope claims it during dispatch.
//
// The interface is sealed: only handle methods of this package mint
// operations, which is the other half of handle unforgeability.
type Operation interface {
	opScope() *scope
	opName() string
}

// Resumed is the type of values flowing through suspension and resumption.
// Effectful computations use Cont[Resumed, A] as their continuation type.
type Resumed any

// suspension is a computation stopped on a pending operation. Resume
// continues it with the value the operation produced.
type suspension interface {
	Op() Operation
	Resume(Resumed) Resumed
}

// unwindOp marks operations that abandon their continuation: the frames
// between the operation and its handler can never be resumed, so each one
// finalizes itself as the operation passes through.
type unwindOp interface {
	Operation
	unwinds()
}

func isUnwind(op Operation) bool {
	_, ok := op.(unwindOp)
	return ok
}

// unwindSuspension carries an unwind-class operation outward. Its
// continuation is dead by construction, so it is not pooled and must
// never be resumed.
type unwindSuspension struct {
	op Operation
}

func (s unwindSuspension) Op() Operation { return s.op }

func (s unwindSuspension) Resume(Resumed) Resumed {
	panic("kap: resumed an abandoned continuation")
}

// unhandledOperation panics for an operation its claiming frame cannot
// interpret. Extracted as a noinline function so dispatch methods remain
// inlineable.
//
//go:noinline
func unhandledOperation(where string) {
	panic("kap: unhandled operation in " + where)
}

// toResumed is the identity continuation for drive entry points. A named
// generic function yields one static funcval per instantiation.
func toResumed[A any](a A) Resumed { return a }

// completed converts a finished drive value to A. A nil value completes
// with the zero value of A; result types whose zero value is meaningful
// as nil (pointers, interfaces) should be wrapped in [Either] when the
// distinction matters.
func completed[A any](r Resumed) A {
	if r == nil {
		var zero A
		return zero
	}
	return r.(A)
}

var markerPool = sync.Pool{
	New: func() any { return new(marker) },
}

// marker is the pooled suspension record. A single resume strategy slot
// covers all marker shapes (perform, bind, then, map, forward); f and k
// hold the strategy's typed payload.
type marker struct {
	op     Operation
	resume func(*marker, Resumed) Resumed
	f      any
	k      any
}

func (m *marker) Op() Operation            { return m.op }
func (m *marker) Resume(v Resumed) Resumed { return m.resume(m, v) }

func acquireMarker() *marker {
	return markerPool.Get().(*marker)
}

func releaseMarker(m *marker) {
	m.op = nil
	m.resume = nil
	m.f = nil
	m.k = nil
	markerPool.Put(m)
}

// opMarkerResume resumes a performed operation with the handler's value.
// Uses a typed continuation to avoid closure allocation in performOp.
func opMarkerResume[A any](m *marker, v Resumed) Resumed {
	k := m.k.(func(A) Resumed)
	releaseMarker(m)
	return k(v.(A))
}

func bindMarkerResume[A, B any](m *marker, v Resumed) Resumed {
	f := m.f.(func(A) Eff[B])
	k := m.k.(func(B) Resumed)
	releaseMarker(m)
	return f(v.(A))(k)
}

func thenMarkerResume[B any](m *marker, _ Resumed) Resumed {
	next := m.f.(Eff[B])
	k := m.k.(func(B) Resumed)
	releaseMarker(m)
	return next(k)
}

func mapMarkerResume[A, B any](m *marker, v Resumed) Resumed {
	f := m.f.(func(A) B)
	k := m.k.(func(B) Resumed)
	releaseMarker(m)
	return k(f(v.(A)))
}

// forwardResume re-enters the drive loop of the frame that forwarded a
// foreign operation.
func forwardResume(m *marker, v Resumed) Resumed {
	k := m.k.(func(Resumed) Resumed)
	releaseMarker(m)
	return k(v)
}

// performOp suspends the computation on op. The handler claiming op's
// scope supplies the value of type A the computation resumes with.
func performOp[A any](op Operation) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		m := acquireMarker()
		m.op = op
		m.k = k
		m.resume = opMarkerResume[A]
		return m
	}
}
