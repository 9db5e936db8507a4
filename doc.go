// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package iteratee provides an iteratee-style streaming consumer: a Step
// drives a stream by repeatedly accepting Input until it produces a result
// or reports exhaustion.
//
// # Design Philosophy
//
// The package is a tiny state machine (Step) around an Input algebra,
// plus the standard consumers and combinators built on top of both. It
// makes no assumption about how its effect type F actually runs —
// synchronously, lazily, or asynchronously — by threading a Monad[F]
// capability (Pure/Map/FlatMap over erased values) explicitly through
// every call that needs one, rather than requiring F to satisfy some
// built-in interface. See Monad's doc comment for why.
//
// # Data Model
//
// Input[E] is a four-variant immutable sum type:
//
//   - [EmptyInput]: nothing to deliver yet, stream still open
//   - [El]: exactly one element
//   - [Chunk]: two or more elements
//   - [EndInput]: terminal signal
//
// [NormalizeInput] builds the smallest variant for a given slice, the one
// path every collector's leftover computation goes through so a
// fewer-than-two-element Chunk can never leak out of this package.
//
// Step[F, E, A] is a three-variant sum type:
//
//   - Cont: awaiting input via a continuation
//   - Done: finished, no leftover
//   - Early: finished, with leftover input a downstream consumer should
//     replay
//
// # Core Operations
//
//   - [Cont], [PureCont]: general and optimised Cont constructors
//   - [Done], [Early], [Ended]: completion constructors
//   - [Step.Feed]: advance a Step by one Input
//   - [Step.IsDone], [Step.UnsafeValue], [Step.Leftover]: inspect a
//     finished Step
//   - [Map]: transform a Step's eventual result
//   - [BindF]: sequence a Step with an effectful continuation
//   - [FoldStep], [FoldStepFunc]: three-arm visitor dispatch
//   - [FoldInput], [FoldInputFunc]: four-arm visitor dispatch
//
// # Utilities
//
//   - [LiftM]: wrap an effectful value as an immediately-Done Step
//   - [JoinI]: collapse a Step whose result is itself a Step
//   - [Zip], [ZipWith]: run two consumers over one shared input stream
//
// # Standard Collectors
//
//   - [Fold], [FoldM]: pure and effectful left-folds
//   - [Drain], [DrainTo]: accumulate every element, into a slice or any
//     [Container]
//   - [Head], [Peek]: consume or inspect exactly one element
//   - [Take], [TakeWhile]: collect a bounded or predicate-bounded prefix
//   - [Drop], [DropWhile]: discard a bounded or predicate-bounded prefix
//
// # Example
//
//	m := effects.Sync
//	s := iteratee.Take[any, int](m, 3)
//	next := s.Feed(iteratee.Chunk(1, 2, []int{3, 4, 5})).(iteratee.Step[any, int, []int])
//	// next is Early([1,2,3], chunk(4,5,[]))
package iteratee
