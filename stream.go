// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kap

// Stream is a pull-style sequence of T backed by a coroutine that takes
// no resume input. The consumer drives production one element at a
// time; nothing is computed between pulls.
type Stream[T any] struct {
	c *Coroutine[struct{}, T, struct{}]
}

// WithStream runs use with a stream whose elements produce emits
// through its Yield handle. Elements left unproduced when use completes
// are never computed.
func WithStream[T, B any](
	produce func(y *Yield[struct{}, T]) Eff[struct{}],
	use func(s *Stream[T]) Eff[B],
) Eff[B] {
	return WithCoroutine(
		func(y *Yield[struct{}, T], _ struct{}) Eff[struct{}] { return produce(y) },
		func(c *Coroutine[struct{}, T, struct{}]) Eff[B] { return use(&Stream[T]{c: c}) },
	)
}

// Next pulls the next element. Left carries the element; Right reports
// exhaustion. Pulling again after exhaustion is a protocol violation,
// as for any completed coroutine.
func Next[T any](s *Stream[T]) Eff[Either[T, struct{}]] {
	return Resume(s.c, struct{}{})
}
