// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee

// Standard consumers, all built from PureCont: none of them, FoldM aside,
// performs an effect per element, so each is a loop of pure Cont values
// wrapped into F only where a caller needs to Feed them.
//
// Every collector's Empty arm resolves spec.md §9's Open Question the same
// way: remain in the same Cont, same accumulator (loopOnEmpty below is
// the shared implementation every onEmpty arm below delegates to).

// loopOnEmpty is the shared Input.Empty handling every collector's pureCont
// loop uses: stay in an equivalent Cont (rebuilt by again) with the
// identical accumulator.
func loopOnEmpty[Z any](again func() Z) Z {
	return again()
}

// appendElems appends es to a fresh copy of acc, never mutating acc's
// backing array — every Step value here is meant to be an immutable
// snapshot, so two Steps built from the same acc must not alias storage.
func appendElems[E any](acc []E, es ...E) []E {
	out := make([]E, len(acc)+len(es))
	copy(out, acc)
	copy(out[len(acc):], es)
	return out
}

// chunkElems flattens a Chunk's e1, e2, rest into one ordered slice.
func chunkElems[E any](e1, e2 E, rest []E) []E {
	out := make([]E, 2+len(rest))
	out[0], out[1] = e1, e2
	copy(out[2:], rest)
	return out
}

// Fold is a pure left-fold collector: onEl recurses with f(acc, e), onChunk
// folds left across every element of the chunk in one step, onEnd
// completes as Early(acc, End) so a downstream consumer in the same
// pipeline also observes termination.
func Fold[F, E, A any](m Monad[F], init A, f func(A, E) A) Step[F, E, A] {
	var loop func(acc A) Step[F, E, A]
	loop = func(acc A) Step[F, E, A] {
		return PureCont[F, E, A](m, func(in Input[E]) Step[F, E, A] {
			return FoldInputFunc[E, Step[F, E, A]](in,
				func() Step[F, E, A] { return loopOnEmpty(func() Step[F, E, A] { return loop(acc) }) },
				func(e E) Step[F, E, A] { return loop(f(acc, e)) },
				func(e1, e2 E, rest []E) Step[F, E, A] {
					next := f(f(acc, e1), e2)
					for _, e := range rest {
						next = f(next, e)
					}
					return loop(next)
				},
				func() Step[F, E, A] { return Ended[F, E, A](m, acc) },
			)
		})
	}
	return loop(init)
}

// FoldM is Fold with an effectful step function: each chunk element's
// effect is sequenced left-to-right via Monad.FlatMap before the loop
// advances, unlike every other collector in this file, which is pure.
func FoldM[F, E, A any](m Monad[F], init A, f func(A, E) F) Step[F, E, A] {
	var loop func(acc A) Step[F, E, A]
	var foldElems func(acc A, es []E) F
	foldElems = func(acc A, es []E) F {
		if len(es) == 0 {
			return m.Pure(loop(acc))
		}
		return m.FlatMap(f(acc, es[0]), func(v any) F {
			return foldElems(v.(A), es[1:])
		})
	}
	loop = func(acc A) Step[F, E, A] {
		return Cont[F, E, A](m, func(in Input[E]) F {
			return FoldInputFunc[E, F](in,
				func() F { return loopOnEmpty(func() F { return m.Pure(loop(acc)) }) },
				func(e E) F { return foldElems(acc, []E{e}) },
				func(e1, e2 E, rest []E) F { return foldElems(acc, chunkElems(e1, e2, rest)) },
				func() F { return m.Pure(Ended[F, E, A](m, acc)) },
			)
		})
	}
	return loop(init)
}

// Container is the capability DrainTo needs from its target type: Empty
// produces a fresh zero value, Append adds one element. This replaces the
// external "monoid in a functor" typeclass spec.md §9 describes with a
// plain capability-object bag, the same shape Monad itself uses.
type Container[C, E any] struct {
	Empty  func() C
	Append func(C, E) C
}

// DrainTo accumulates every element fed to it into a container of type C,
// using the given Container capability. onEnd completes as
// Early(acc, End), preserving element order as delivered.
func DrainTo[F, E, C any](m Monad[F], c Container[C, E]) Step[F, E, C] {
	var loop func(acc C) Step[F, E, C]
	loop = func(acc C) Step[F, E, C] {
		return PureCont[F, E, C](m, func(in Input[E]) Step[F, E, C] {
			return FoldInputFunc[E, Step[F, E, C]](in,
				func() Step[F, E, C] { return loopOnEmpty(func() Step[F, E, C] { return loop(acc) }) },
				func(e E) Step[F, E, C] { return loop(c.Append(acc, e)) },
				func(e1, e2 E, rest []E) Step[F, E, C] {
					next := c.Append(c.Append(acc, e1), e2)
					for _, e := range rest {
						next = c.Append(next, e)
					}
					return loop(next)
				},
				func() Step[F, E, C] { return Early[F, E, C](m, acc, EndInput[E]()) },
			)
		})
	}
	return loop(c.Empty())
}

// Drain accumulates every element into an ordered slice. It is DrainTo
// specialised to the slice container, the one every other source in this
// package needs.
func Drain[F, E any](m Monad[F]) Step[F, E, []E] {
	return DrainTo[F, E, []E](m, Container[[]E, E]{
		Empty:  func() []E { return nil },
		Append: func(acc []E, e E) []E { return appendElems(acc, e) },
	})
}

// Head consumes exactly one element: Some(e) with no leftover when a bare
// element is fed (it was wholly consumed), Some(e1) with the remaining
// chunk elements as leftover when a chunk is fed, None on End.
func Head[F, E any](m Monad[F]) Step[F, E, Option[E]] {
	return PureCont[F, E, Option[E]](m, func(in Input[E]) Step[F, E, Option[E]] {
		return FoldInputFunc[E, Step[F, E, Option[E]]](in,
			func() Step[F, E, Option[E]] { return loopOnEmpty(func() Step[F, E, Option[E]] { return Head[F, E](m) }) },
			func(e E) Step[F, E, Option[E]] { return Done[F, E, Option[E]](m, Some(e)) },
			func(e1, e2 E, rest []E) Step[F, E, Option[E]] {
				return Early[F, E, Option[E]](m, Some(e1), NormalizeInput(appendElems([]E{e2}, rest...)))
			},
			func() Step[F, E, Option[E]] { return Early[F, E, Option[E]](m, None[E](), EndInput[E]()) },
		)
	})
}

// Peek behaves like Head but never consumes: whatever Input arrives is
// handed back whole as the leftover.
func Peek[F, E any](m Monad[F]) Step[F, E, Option[E]] {
	return PureCont[F, E, Option[E]](m, func(in Input[E]) Step[F, E, Option[E]] {
		return FoldInputFunc[E, Step[F, E, Option[E]]](in,
			func() Step[F, E, Option[E]] { return loopOnEmpty(func() Step[F, E, Option[E]] { return Peek[F, E](m) }) },
			func(e E) Step[F, E, Option[E]] { return Early[F, E, Option[E]](m, Some(e), in) },
			func(e1, _ E, _ []E) Step[F, E, Option[E]] { return Early[F, E, Option[E]](m, Some(e1), in) },
			func() Step[F, E, Option[E]] { return Early[F, E, Option[E]](m, None[E](), EndInput[E]()) },
		)
	})
}

// Take collects up to n elements in order. n <= 0 Dones immediately with
// an empty slice, consuming no input at all.
func Take[F, E any](m Monad[F], n int) Step[F, E, []E] {
	if n <= 0 {
		return Done[F, E, []E](m, nil)
	}
	var loop func(acc []E, remaining int) Step[F, E, []E]
	loop = func(acc []E, remaining int) Step[F, E, []E] {
		return PureCont[F, E, []E](m, func(in Input[E]) Step[F, E, []E] {
			return FoldInputFunc[E, Step[F, E, []E]](in,
				func() Step[F, E, []E] { return loopOnEmpty(func() Step[F, E, []E] { return loop(acc, remaining) }) },
				func(e E) Step[F, E, []E] {
					next := appendElems(acc, e)
					if remaining == 1 {
						return Done[F, E, []E](m, next)
					}
					return loop(next, remaining-1)
				},
				func(e1, e2 E, rest []E) Step[F, E, []E] {
					all := chunkElems(e1, e2, rest)
					switch {
					case len(all) < remaining:
						return loop(appendElems(acc, all...), remaining-len(all))
					case len(all) == remaining:
						return Done[F, E, []E](m, appendElems(acc, all...))
					default:
						return Early[F, E, []E](m, appendElems(acc, all[:remaining]...), NormalizeInput(all[remaining:]))
					}
				},
				func() Step[F, E, []E] { return Early[F, E, []E](m, acc, EndInput[E]()) },
			)
		})
	}
	return loop(nil, n)
}

// TakeWhile collects the longest prefix satisfying p; the leftover is the
// first failing element onward, normalised to El/Chunk/Empty as needed.
func TakeWhile[F, E any](m Monad[F], p func(E) bool) Step[F, E, []E] {
	var loop func(acc []E) Step[F, E, []E]
	loop = func(acc []E) Step[F, E, []E] {
		return PureCont[F, E, []E](m, func(in Input[E]) Step[F, E, []E] {
			return FoldInputFunc[E, Step[F, E, []E]](in,
				func() Step[F, E, []E] { return loopOnEmpty(func() Step[F, E, []E] { return loop(acc) }) },
				func(e E) Step[F, E, []E] {
					if p(e) {
						return loop(appendElems(acc, e))
					}
					return Early[F, E, []E](m, acc, El(e))
				},
				func(e1, e2 E, rest []E) Step[F, E, []E] {
					all := chunkElems(e1, e2, rest)
					idx := firstFailing(all, p)
					if idx < 0 {
						return loop(appendElems(acc, all...))
					}
					return Early[F, E, []E](m, appendElems(acc, all[:idx]...), NormalizeInput(all[idx:]))
				},
				func() Step[F, E, []E] { return Early[F, E, []E](m, acc, EndInput[E]()) },
			)
		})
	}
	return loop(nil)
}

// firstFailing returns the index of the first element not satisfying p, or
// -1 if every element satisfies it.
func firstFailing[E any](es []E, p func(E) bool) int {
	for i, e := range es {
		if !p(e) {
			return i
		}
	}
	return -1
}

// Drop discards n elements. n <= 0 Dones immediately, consuming no input.
func Drop[F, E any](m Monad[F], n int) Step[F, E, struct{}] {
	if n <= 0 {
		return Done[F, E, struct{}](m, struct{}{})
	}
	return PureCont[F, E, struct{}](m, func(in Input[E]) Step[F, E, struct{}] {
		return FoldInputFunc[E, Step[F, E, struct{}]](in,
			func() Step[F, E, struct{}] { return loopOnEmpty(func() Step[F, E, struct{}] { return Drop[F, E](m, n) }) },
			func(_ E) Step[F, E, struct{}] { return Drop[F, E](m, n-1) },
			func(e1, e2 E, rest []E) Step[F, E, struct{}] {
				all := chunkElems(e1, e2, rest)
				if len(all) <= n {
					return Drop[F, E](m, n-len(all))
				}
				return Early[F, E, struct{}](m, struct{}{}, NormalizeInput(all[n:]))
			},
			func() Step[F, E, struct{}] { return Early[F, E, struct{}](m, struct{}{}, EndInput[E]()) },
		)
	})
}

// DropWhile discards the longest prefix satisfying p.
func DropWhile[F, E any](m Monad[F], p func(E) bool) Step[F, E, struct{}] {
	return PureCont[F, E, struct{}](m, func(in Input[E]) Step[F, E, struct{}] {
		return FoldInputFunc[E, Step[F, E, struct{}]](in,
			func() Step[F, E, struct{}] { return loopOnEmpty(func() Step[F, E, struct{}] { return DropWhile[F, E](m, p) }) },
			func(e E) Step[F, E, struct{}] {
				if p(e) {
					return DropWhile[F, E](m, p)
				}
				return Early[F, E, struct{}](m, struct{}{}, El(e))
			},
			func(e1, e2 E, rest []E) Step[F, E, struct{}] {
				all := chunkElems(e1, e2, rest)
				idx := firstFailing(all, p)
				if idx < 0 {
					return DropWhile[F, E](m, p)
				}
				return Early[F, E, struct{}](m, struct{}{}, NormalizeInput(all[idx:]))
			},
			func() Step[F, E, struct{}] { return Early[F, E, struct{}](m, struct{}{}, EndInput[E]()) },
		)
	})
}
