// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee

// Monad is the effect capability a Step threads its work through: pure,
// map, and flatMap, satisfying the standard monad laws. It is the
// "capability object" strategy spec.md §9 names as the recommended
// portable encoding of an abstract F[_] in a language without
// higher-kinded types: a small bag of operations over erased (any) values,
// passed explicitly wherever a Step needs it, rather than a type class
// bound on F itself.
//
// This mirrors kont's own erasure idiom — Operation and Resumed are both
// defined as `any`, and HandleFunc wraps a plain dispatch closure into a
// Handler — applied here to pure/map/flatMap instead of effect dispatch.
//
// Pure wraps a bare value (typically a Step[F, E, A]) into F.
// Map transforms the value inside fa without changing F's shape.
// FlatMap sequences fa with a function that itself produces a new F.
//
// Some constructors in this package only need Pure and Map (any Step built
// purely, with no suspended effectful work); collectors.go's FoldM is the
// one place FlatMap's sequencing is required for a user-supplied effect
// per element.
type Monad[F any] struct {
	Pure    func(v any) F
	Map     func(fa F, f func(any) any) F
	FlatMap func(fa F, k func(any) F) F
}
