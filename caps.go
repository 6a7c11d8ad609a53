// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Capability interfaces. A capability is the set of operations a handle
// supports, not a concrete representation: anything that can supply the
// operations qualifies. Compound handles bundle several capabilities
// behind one value by embedding the constituent handles; the promoted
// methods satisfy these interfaces with no further code.

// Cell is the operation set of a read/write state capability.
// [State] satisfies it directly; [Field] derives one cell from another.
type Cell[S any] interface {
	Get() Eff[S]
	Set(S) Eff[struct{}]
	Modify(func(S) S) Eff[S]
}

// Raiser is the accessor interface of a typed failure channel. It is an
// accessor rather than an operation set because throwing is polymorphic
// in the result type, which a method cannot express; [Throw] takes any
// Raiser.
type Raiser[E any] interface {
	raiseHandle() *Exception[E]
}

// Host is the accessor interface of the host-effect capability, satisfied
// by [IO] and by any bundle embedding one. [LiftIO] and [Printf] take any
// Host.
type Host interface {
	ioHandle() *IO
}

// Field derives a Cell[T] viewing one component of a Cell[S], using get
// to project the component and put to write it back. The derived cell
// performs its reads and writes entirely through the base cell's
// operations and shares its scope.
func Field[S, T any](h Cell[S], get func(S) T, put func(S, T) S) Cell[T] {
	return fieldCell[S, T]{base: h, get: get, put: put}
}

type fieldCell[S, T any] struct {
	base Cell[S]
	get  func(S) T
	put  func(S, T) S
}

func (c fieldCell[S, T]) Get() Eff[T] {
	return Map(c.base.Get(), c.get)
}

func (c fieldCell[S, T]) Set(v T) Eff[struct{}] {
	return Bind(c.base.Get(), func(s S) Eff[struct{}] {
		return c.base.Set(c.put(s, v))
	})
}

func (c fieldCell[S, T]) Modify(f func(T) T) Eff[T] {
	return Map(c.base.Modify(func(s S) S {
		return c.put(s, f(c.get(s)))
	}), c.get)
}
