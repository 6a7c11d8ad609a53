// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Sequencing combinators for continuations. Return and Bind form the
// minimal complete set; Map and Then are derived forms kept because they
// avoid an intermediate closure where the full generality of Bind is not
// needed.

// Bind runs m, then passes its result to f to obtain the next computation.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a computation.
// Equivalent to Bind(m, compose(Return, f)) without the intermediate
// Return closure; prefer it when f performs no operations.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then runs m, discards its result, and continues with n.
// Cheaper than Bind(m, func(A) ...) when n does not depend on m's result.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}
