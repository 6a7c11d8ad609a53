// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Eff is an effectful computation producing a value of type A.
//
// An Eff is inert: building one performs nothing. Execution happens when a
// handler drives it, or when it crosses a top-level entry point ([RunIO],
// [ExtractPure]). Capability operations inside an Eff suspend the computation;
// the handler owning the operation's scope supplies the value it resumes with.
type Eff[A any] = Cont[Resumed, A]

// Pure lifts a value into an effectful computation that performs no
// operations.
func Pure[A any](a A) Eff[A] {
	return Return[Resumed](a)
}

// Cont is the continuation-passing substrate underneath [Eff].
// Cont[R, A] computes a value of type A with final answer type R; the
// function receives the rest of the computation as k and must deliver its
// result by applying k, or produce an R without k to abandon the rest.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a raw CPS function, for code that
// needs direct access to its continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// identity is the identity continuation for Run. A named generic function
// yields one static funcval per instantiation, where an anonymous closure
// would allocate.
func identity[A any](a A) A { return a }

// Run executes a continuation whose answer type equals its value type.
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes a continuation with an explicit final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
