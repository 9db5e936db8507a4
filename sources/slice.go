// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sources drives an iteratee.Step to completion from concrete
// input producers: an in-memory slice, a stdlib iter.Seq, or a file
// tailed with fsnotify.
package sources

import "github.com/streamkit/iteratee"

// FromSlice feeds es to s in chunks of at most chunkSize elements,
// normalizing each chunk with iteratee.NormalizeInput, then feeds
// iteratee.EndInput once es is exhausted. It stops early if s finishes
// before all of es has been fed. chunkSize <= 0 feeds es as one chunk.
//
// run unwraps the F the Step's Feed returns — effects.Run for either of
// the effects package's capabilities.
func FromSlice[F, E, A any](run func(F) iteratee.Step[F, E, A], s iteratee.Step[F, E, A], es []E, chunkSize int) iteratee.Step[F, E, A] {
	if chunkSize <= 0 {
		chunkSize = len(es)
	}
	for len(es) > 0 && !s.IsDone() {
		n := chunkSize
		if n > len(es) {
			n = len(es)
		}
		s = run(s.Feed(iteratee.NormalizeInput(es[:n])))
		es = es[n:]
	}
	if !s.IsDone() {
		s = run(s.Feed(iteratee.EndInput[E]()))
	}
	return s
}
