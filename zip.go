// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee

// Pair holds the combined result of Zip-ing two consumers over one input
// stream.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Zip runs two consumers over a single shared input stream, returning
// F[Step[F, E, Pair[A, B]]]. Operand A is always fed before operand B for
// each input, so side effects visible through F interleave A-before-B.
//
// Classification happens once per combination point: a finished operand
// (Done or Early) is distinguished from a pending one (Cont).
//
//   - Both finished: the combined leftover is the shorter-remainder
//     (shorterRemainder below); Done if the shorter is absent/empty-on-both-
//     sides, Early otherwise.
//   - One finished, one pending: the pending side is Mapped to pair its
//     eventual result with the finished value — zip simply keeps driving
//     the pending operand; the finished value rides along as a closure
//     capture with no re-classification needed until the pending side
//     itself finishes.
//   - Both pending: a Cont that, on every input, feeds it to both
//     continuations (A before B) and reclassifies the resulting pair —
//     this also covers an End fed to a both-pending zip, per spec.md's
//     Open Question resolution unifying the El/Chunk/End forwarding path
//     (SPEC_FULL.md §D.2).
func Zip[F, E, A, B any](m Monad[F], sA Step[F, E, A], sB Step[F, E, B]) F {
	return zipCore[F, E, A, B](m, sA, sB)
}

// ZipWith is Zip followed by a pure combiner, the same derivation Map is of
// Bind: generalizes the bare-pair Zip with a combiner function.
func ZipWith[F, E, A, B, C any](m Monad[F], sA Step[F, E, A], sB Step[F, E, B], combine func(A, B) C) F {
	return m.FlatMap(Zip[F, E, A, B](m, sA, sB), func(v any) F {
		paired := v.(Step[F, E, Pair[A, B]])
		return m.Pure(Map[F, E, Pair[A, B], C](paired, func(p Pair[A, B]) C {
			return combine(p.Fst, p.Snd)
		}))
	})
}

func zipCore[F, E, A, B any](m Monad[F], sA Step[F, E, A], sB Step[F, E, B]) F {
	aDone := sA.tag != stepCont
	bDone := sB.tag != stepCont

	switch {
	case aDone && bDone:
		return m.Pure(combineFinished[F, E, A, B](m, sA, sB))
	case aDone && !bDone:
		a := sA.result
		return m.Pure(Map[F, E, B, Pair[A, B]](sB, func(b B) Pair[A, B] {
			return Pair[A, B]{Fst: a, Snd: b}
		}))
	case !aDone && bDone:
		b := sB.result
		return m.Pure(Map[F, E, A, Pair[A, B]](sA, func(a A) Pair[A, B] {
			return Pair[A, B]{Fst: a, Snd: b}
		}))
	default:
		kA, kB := sA.k, sB.k
		return m.Pure(Cont[F, E, Pair[A, B]](m, func(in Input[E]) F {
			return m.FlatMap(kA(in), func(va any) F {
				nextA := va.(Step[F, E, A])
				return m.FlatMap(kB(in), func(vb any) F {
					nextB := vb.(Step[F, E, B])
					return zipCore[F, E, A, B](m, nextA, nextB)
				})
			})
		}))
	}
}

// combineFinished builds the final Done/Early for two already-finished
// operands, via the shorter-remainder rule.
func combineFinished[F, E, A, B any](m Monad[F], sA Step[F, E, A], sB Step[F, E, B]) Step[F, E, Pair[A, B]] {
	pair := Pair[A, B]{Fst: sA.result, Snd: sB.result}
	rem, ok := shorterRemainder[E](sA.tag == stepEarly, sA.leftover, sB.tag == stepEarly, sB.leftover)
	if !ok {
		return Done[F, E, Pair[A, B]](m, pair)
	}
	return Early[F, E, Pair[A, B]](m, pair, rem)
}

// shorterRemainder implements spec.md §4.6.1. aPresent/bPresent report
// whether that side is Early (carries a leftover) as opposed to Done
// (finished exactly, no leftover at all — absent, not "Input.Empty").
//
//   - If neither side has a leftover, there is no combined leftover.
//   - If exactly one side has a leftover, it wins outright: the other side
//     finished exactly and has no opinion to compare against.
//   - If both have a leftover and either is End, End wins (end dominates).
//   - Otherwise the shorter of the two (by element count) wins; ties go to
//     the first argument (A's side).
func shorterRemainder[E any](aPresent bool, rA Input[E], bPresent bool, rB Input[E]) (Input[E], bool) {
	switch {
	case !aPresent && !bPresent:
		return Input[E]{}, false
	case aPresent && !bPresent:
		return rA, true
	case !aPresent && bPresent:
		return rB, true
	}
	if rA.IsEnd() || rB.IsEnd() {
		return EndInput[E](), true
	}
	if rB.Len() < rA.Len() {
		return rB, true
	}
	return rA, true
}
