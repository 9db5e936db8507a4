// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee

// MapInput projects an Input[E] onto an Input[E2] by applying f to every
// element it carries, keeping the variant (Empty, El, Chunk or End).
func MapInput[E, E2 any](in Input[E], f func(E) E2) Input[E2] {
	return FoldInputFunc[E, Input[E2]](in,
		func() Input[E2] { return EmptyInput[E2]() },
		func(e E) Input[E2] { return El(f(e)) },
		func(e1, e2 E, rest []E) Input[E2] {
			rest2 := make([]E2, len(rest))
			for i, e := range rest {
				rest2[i] = f(e)
			}
			return Chunk(f(e1), f(e2), rest2)
		},
		func() Input[E2] { return EndInput[E2]() },
	)
}

// Collect drains a fresh Drain Step across ins in order, stopping early if
// the Step finishes before ins is exhausted, and feeding a final End if it
// hasn't finished once ins runs out. It returns the collected elements and
// whatever leftover the Step finished with.
//
// run extracts a Step synchronously out of the wrapping effect F — for the
// synchronous identity capability (effects.Sync) this is a bare type
// assertion; for an asynchronous capability it would block until the
// effect resolves. Collect is the synchronous convenience spec.md's
// "Concrete scenarios" describe results with; it is not a new primitive,
// it is Drain composed with a driving loop, the same way kont.Run composes
// Cont with the identity continuation.
func Collect[F, E any](m Monad[F], run func(F) Step[F, E, []E], ins []Input[E]) ([]E, Input[E]) {
	s := Drain[F, E](m)
	for _, in := range ins {
		if s.IsDone() {
			break
		}
		s = run(s.Feed(in))
	}
	if !s.IsDone() {
		s = run(s.Feed(EndInput[E]()))
	}
	if s.tag == stepDone {
		return s.UnsafeValue(), EmptyInput[E]()
	}
	return s.UnsafeValue(), s.Leftover()
}
