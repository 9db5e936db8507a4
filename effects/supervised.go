// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import (
	"gopkg.in/tomb.v2"

	"github.com/streamkit/iteratee"
)

// Supervised returns a Monad[any] capability whose Map and FlatMap
// dispatch their work onto t via t.Go rather than running it inline, the
// same supervision idiom tombstreams' Map/Flow stages use: every step of
// a Step chain driven under this capability runs as one more goroutine
// under t, so a single t.Kill tears the whole chain down early (further
// Map/FlatMap calls see a dead tomb and return nil instead of blocking).
//
// Pure does not need a goroutine: wrapping an already-available value
// cannot fail or block.
func Supervised(t *tomb.Tomb) iteratee.Monad[any] {
	return iteratee.Monad[any]{
		Pure: func(v any) any {
			return v
		},
		Map: func(fa any, f func(any) any) any {
			return runSupervised(t, func() any { return f(fa) })
		},
		FlatMap: func(fa any, k func(any) any) any {
			return runSupervised(t, func() any { return k(fa) })
		},
	}
}

// runSupervised runs work on a goroutine owned by t and blocks the
// calling goroutine until either work finishes or t starts dying —
// mirroring the select-on-t.Dying() pattern tombstreams' transmit/doStream
// use to make every blocking handoff cancellable.
func runSupervised(t *tomb.Tomb, work func() any) any {
	if !t.Alive() {
		return nil
	}
	result := make(chan any, 1)
	t.Go(func() error {
		result <- work()
		return nil
	})
	select {
	case v := <-result:
		return v
	case <-t.Dying():
		return nil
	}
}

