// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee

// Cont builds a Step that is awaiting input. k is the general effectful
// continuation: given the next Input, it produces the effect-wrapped next
// Step.
func Cont[F, E, A any](m Monad[F], k func(Input[E]) F) Step[F, E, A] {
	return Step[F, E, A]{tag: stepCont, k: k, m: m}
}

// PureCont builds a Cont from a pure continuation — one that returns the
// next Step directly instead of an effect-wrapped one. It is semantically
// identical to Cont(m, func(in) F { return m.Pure(k(in)) }), and is the
// form every standard collector in collectors.go is built from, since none
// of them perform an effect per element (FoldM is the one exception, and
// it is built from Cont directly).
func PureCont[F, E, A any](m Monad[F], k func(Input[E]) Step[F, E, A]) Step[F, E, A] {
	return Cont[F, E, A](m, func(in Input[E]) F {
		return m.Pure(k(in))
	})
}

// Done builds a Step that has finished with result a and no leftover
// input.
func Done[F, E, A any](m Monad[F], a A) Step[F, E, A] {
	return Step[F, E, A]{tag: stepDone, result: a, m: m}
}

// Early builds a Step that has finished with result a, carrying a
// remainder Input the producer should treat as not-yet-consumed.
func Early[F, E, A any](m Monad[F], a A, remainder Input[E]) Step[F, E, A] {
	return Step[F, E, A]{tag: stepEarly, result: a, leftover: remainder, m: m}
}

// Ended is Early(m, a, EndInput[E]()): completion triggered by end-of-stream,
// with the End signal preserved as leftover so any downstream consumer in
// the same pipeline also observes termination.
func Ended[F, E, A any](m Monad[F], a A) Step[F, E, A] {
	return Early[F, E, A](m, a, EndInput[E]())
}

// LiftM wraps an effectful value fa: F[A] into an effect-wrapped Step that
// Dones immediately with fa's result, consuming no input. Unlike Cont/Done/
// Early, which build a bare Step, LiftM returns F itself — the same shape
// BindF/Zip/JoinI return — because producing the Done Step requires first
// running fa's effect to obtain the A it Dones with.
func LiftM[F, E, A any](m Monad[F], fa F) F {
	return m.Map(fa, func(v any) any {
		return Done[F, E, A](m, v.(A))
	})
}
