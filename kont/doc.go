// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kont provides continuation-passing style primitives and algebraic effects
// in Go.
//
// The core type [Cont] represents a computation that accepts a continuation
// and produces a final result. Effects are raised with [Perform] and
// interpreted by a [Handler].
//
// # Design Philosophy
//
// kont provides:
//   - Minimal but complete interfaces for continuations and effects
//   - F-bounded polymorphism for compile-time dispatch and devirtualization
//   - An allocation-free effect dispatch loop (construction may allocate)
//
// # F-Bounded Architecture
//
// The package uses Go 1.26 F-bounded polymorphism (type T[P T[P]]) as a core
// architectural principle. This enables:
//
//   - Compile-time knowledge of concrete types at monomorphization time
//   - Potential devirtualization of dispatch calls by the compiler
//   - Allocation-free trampoline loops for effect handling through typed dispatch
//
// Key F-bounded interfaces:
//
//   - [Op]: type Op[O Op[O, A], A any] — operations know their concrete type
//   - [Handler]: type Handler[H Handler[H, R], R any] — handlers know their concrete type
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Return]: Lift a pure value into a continuation
//   - [Bind]: Sequence two continuations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Return(f(a)))
//   - [Then]: Sequence, discarding first result — equivalent to Bind(m, func(_) n)
//
// Execution:
//
//   - [Suspend]: Create a continuation from a CPS function
//   - [Run]: Execute a continuation to obtain the result
//   - [RunWith]: Execute with a custom final handler
//
// # Nil Completion
//
// Nil completion convention: effect runners ([Handle], [RunError]) treat a nil
// [Resumed] value as “completed with the zero value”. This implies computations whose
// final result type is a pointer or interface cannot use nil as a meaningful
// result value; wrap such results in a sum type (e.g., [Either]) if you need to
// distinguish “completed with nil” from “completed with zero”.
//
// # Algebraic Effects
//
// Effects are defined as types implementing the F-bounded [Op] constraint,
// and handlers interpret these effects via the F-bounded [Handler] interface.
// Handler dispatch returns (resumeValue, true) to continue the computation,
// or (finalResult, false) to short-circuit.
//
//   - [Op]: F-bounded effect operation interface
//   - [Operation]: Runtime type for effect operations
//   - [Resumed]: Runtime type for resumption values
//   - [Handler]: F-bounded effect interpreter interface
//   - [Perform]: Trigger an effect operation
//   - [Handle]: Run a computation with an F-bounded effect handler
//   - [HandleFunc]: Create a handler from a dispatch function
//
// # Standard Effects
//
// The one standard effect is Error. Its operations implement a dispatch
// method (DispatchError) called through a structural assertion in the
// error handler.
//
// Error effect for exception-like control flow:
//
//   - [Throw], [Catch]: Effect operations
//   - [ErrorContext]: Shared context for error dispatch
//   - [Throw].DispatchError: sets error in context, returns (struct{}{}, true)
//   - [Catch].DispatchError: runs body with RunError internally
//   - [ThrowError], [CatchError]: Convenience constructors (Cont)
//   - [RunError]: Run with Error effect (Cont), returns [Either]
//
// # Either Type
//
// [Either] represents success (Right) or failure (Left):
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither]: Functor map over Right
//   - [FlatMapEither]: Monadic bind
//   - [MapLeftEither]: Transform Left value
//
// # Resource Safety
//
// Exception-safe resource management:
//
//   - [Bracket]: Acquire-release-use with guaranteed cleanup
//   - [OnError]: Run cleanup only on error
//
// # Example
//
//	type Ask[A any] struct{}
//	func (Ask[A]) OpResult() A { panic("phantom") }
//
//	comp := kont.Bind(
//		kont.Perform(Ask[int]{}),
//		func(x int) kont.Cont[kont.Resumed, int] {
//			return kont.Return[kont.Resumed](x * 2)
//		},
//	)
//
//	result := kont.Handle(comp, kont.HandleFunc[int](func(op kont.Operation) (kont.Resumed, bool) {
//		switch op.(type) {
//		case Ask[int]:
//			return 21, true // resume with 21
//		default:
//			panic("unhandled effect")
//		}
//	}))
//	// result == 42
package kont
