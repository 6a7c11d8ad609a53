// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Delimited control operators, Danvy & Filinski's formulation (1990).
// Handler extents in this package are delimited in exactly this sense:
// an operation captures its continuation up to the handler that claims it.

// Shift captures the current continuation up to the nearest Reset.
// f receives the captured continuation k and may invoke it zero or more
// times.
//
// Example:
//
//	Reset(Bind(Shift(func(k func(int) int) int {
//	    return k(k(3))
//	}), func(x int) Cont[int, int] {
//	    return Return[int](x * 2)
//	}))
//	// Result: 12
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset delimits the continuations captured by Shift.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](Run(m))
}
