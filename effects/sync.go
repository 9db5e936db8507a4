// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effects supplies concrete Monad[F] capabilities for the
// iteratee package: Sync, a synchronous identity effect, and Supervised,
// an effect whose FlatMap dispatches onto a goroutine supervised by a
// gopkg.in/tomb.v2 Tomb.
package effects

import (
	"github.com/streamkit/iteratee"
	"github.com/streamkit/iteratee/kont"
)

// Sync is the synchronous identity capability: F is any, and every
// operation runs to completion before returning. It is built from
// kont.Return, kont.Map and kont.Bind rather than from bare closures, so
// a Step driven with Sync still goes through the same continuation
// machinery kont.Run uses to drive a Cont — Pure, Map and FlatMap are
// just Cont[any, any] run immediately.
var Sync = iteratee.Monad[any]{
	Pure: func(v any) any {
		return kont.Run(kont.Return[any, any](v))
	},
	Map: func(fa any, f func(any) any) any {
		return kont.Run(kont.Map[any, any, any](kont.Return[any, any](fa), f))
	},
	FlatMap: func(fa any, k func(any) any) any {
		return kont.Run(kont.Bind[any, any, any](kont.Return[any, any](fa), func(a any) kont.Cont[any, any] {
			return kont.Return[any, any](k(a))
		}))
	},
}

// Run extracts a Step[any, E, A] out of an effect value produced by Sync
// or Supervised — both use F = any, so unwrapping is a bare type
// assertion in either case. It is the run function callers of Collect,
// the sources package's drivers or a raw Feed loop pass.
func Run[E, A any](fa any) iteratee.Step[any, E, A] {
	return fa.(iteratee.Step[any, E, A])
}
