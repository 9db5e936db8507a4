// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee

// Step is the consumer's current state: Cont (awaiting input through a
// continuation), Done (finished, no leftover), or Early (finished, with
// leftover input the producer must replay into the next consumer).
//
// F is the effect the Step is threaded through — the type a Monad[F]
// capability produces when it wraps a value. E is the element type. A is
// the eventual result type.
//
// Step is a value type: every combinator in this package returns a new
// Step rather than mutating one in place.
type Step[F, E, A any] struct {
	tag      stepTag
	result   A
	leftover Input[E]
	k        func(Input[E]) F
	m        Monad[F]
}

type stepTag uint8

const (
	stepCont stepTag = iota
	stepDone
	stepEarly
)

// IsDone reports whether this Step has finished (Done or Early). A false
// result means the Step is Cont and awaiting input.
func (s Step[F, E, A]) IsDone() bool {
	return s.tag != stepCont
}

// UnsafeValue returns the Step's result. It is only legal to call when
// IsDone is true; calling it on a Cont is a programming error and panics,
// mirroring kont's own treatment of calling OpResult on a phantom marker.
func (s Step[F, E, A]) UnsafeValue() A {
	if s.tag == stepCont {
		panic("iteratee: UnsafeValue called on a Cont Step")
	}
	return s.result
}

// Leftover returns the unconsumed Input carried by an Early Step. It is
// the zero Input (Empty) for Done and Cont, since neither carries leftover.
func (s Step[F, E, A]) Leftover() Input[E] {
	return s.leftover
}

// Feed advances the Step with one Input, producing the effect-wrapped next
// Step. A Done or Early Step yields itself purely — no effect is performed
// — which makes Feed idempotent once a Step is finished.
func (s Step[F, E, A]) Feed(in Input[E]) F {
	if s.tag != stepCont {
		return s.m.Pure(s)
	}
	return s.k(in)
}

// StepFolder is the three-arm visitor over Step: OnCont for an awaiting
// continuation, OnDone for a clean finish, OnEarly for a finish carrying
// leftover input. Folder implementations that don't care about the
// leftover can implement OnEarly by delegating to OnDone.
type StepFolder[F, E, A, Z any] interface {
	OnCont(k func(Input[E]) F) Z
	OnDone(a A) Z
	OnEarly(a A, remainder Input[E]) Z
}

// FoldStep dispatches a Step to the matching arm of a Folder. It is a free
// function, not a method, for the same reason FoldInput is: Go methods
// cannot introduce a visitor's own return-type parameter.
func FoldStep[F, E, A, Z any](s Step[F, E, A], f StepFolder[F, E, A, Z]) Z {
	switch s.tag {
	case stepCont:
		return f.OnCont(s.k)
	case stepEarly:
		return f.OnEarly(s.result, s.leftover)
	default:
		return f.OnDone(s.result)
	}
}

// stepFolderFunc adapts three closures into a StepFolder.
type stepFolderFunc[F, E, A, Z any] struct {
	onCont  func(func(Input[E]) F) Z
	onDone  func(A) Z
	onEarly func(A, Input[E]) Z
}

func (f stepFolderFunc[F, E, A, Z]) OnCont(k func(Input[E]) F) Z       { return f.onCont(k) }
func (f stepFolderFunc[F, E, A, Z]) OnDone(a A) Z                      { return f.onDone(a) }
func (f stepFolderFunc[F, E, A, Z]) OnEarly(a A, rem Input[E]) Z       { return f.onEarly(a, rem) }

// FoldStepFunc is FoldStep for callers that would rather pass three
// closures than define a named StepFolder implementation. onEarly may be
// nil, in which case it delegates to onDone and discards the leftover —
// the default StepFolder.OnEarly behaviour spec.md describes.
func FoldStepFunc[F, E, A, Z any](s Step[F, E, A], onCont func(func(Input[E]) F) Z, onDone func(A) Z, onEarly func(A, Input[E]) Z) Z {
	if onEarly == nil {
		onEarly = func(a A, _ Input[E]) Z { return onDone(a) }
	}
	return FoldStep[F, E, A, Z](s, stepFolderFunc[F, E, A, Z]{onCont, onDone, onEarly})
}

// Map transforms the eventual result of a Step. The variant is preserved:
// Done stays Done, Early stays Early with the same remainder, and Cont
// stays Cont with the mapping pushed inside the continuation's effectful
// result so that feeding a mapped Step performs exactly the same effects as
// feeding the original.
//
// Map is a free function, not a method, because it introduces the result
// type B independently of the Step's existing type parameters.
func Map[F, E, A, B any](s Step[F, E, A], f func(A) B) Step[F, E, B] {
	switch s.tag {
	case stepDone:
		return Done[F, E, B](s.m, f(s.result))
	case stepEarly:
		return Early[F, E, B](s.m, f(s.result), s.leftover)
	default:
		m := s.m
		k := s.k
		return Cont[F, E, B](m, func(in Input[E]) F {
			return m.Map(k(in), func(v any) any {
				return Map[F, E, A, B](v.(Step[F, E, A]), f)
			})
		})
	}
}

// BindF sequences a Step with an effectful continuation f: A -> F, where
// f's result is itself understood to wrap a Step[F, E, B]. BindF returns
// the effect directly (not a bare Step), matching spec.md's combinator
// laws (done(a).bindF(f) == f(a)).
//
//   - Done(a): runs f(a) directly.
//   - Early(a, rem): runs f(a), then classifies what it produced. A Cont
//     is fed rem immediately. A Done(b) or Early(b, _) becomes Early(b,
//     rem) — rem is real unconsumed producer data and must propagate; an
//     inner Early's own remainder is discarded because the inner consumer
//     never actually saw a producer.
//   - Cont(k): returns a new effect that, on Pure, yields a Cont whose own
//     continuation feeds input into k and binds the result with f.
func BindF[F, E, A, B any](s Step[F, E, A], f func(A) F) F {
	switch s.tag {
	case stepDone:
		return f(s.result)
	case stepEarly:
		m := s.m
		rem := s.leftover
		return m.FlatMap(f(s.result), func(v any) F {
			inner := v.(Step[F, E, B])
			switch inner.tag {
			case stepCont:
				return inner.k(rem)
			default:
				return m.Pure(Early[F, E, B](m, inner.result, rem))
			}
		})
	default:
		m := s.m
		k := s.k
		next := Cont[F, E, B](m, func(in Input[E]) F {
			return m.FlatMap(k(in), func(v any) F {
				return BindF[F, E, A, B](v.(Step[F, E, A]), f)
			})
		})
		return m.Pure(next)
	}
}
