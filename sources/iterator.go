// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sources

import (
	"iter"

	"github.com/streamkit/iteratee"
)

// FromIterator pulls elements lazily out of seq one at a time, feeding
// each as iteratee.El, and feeds iteratee.EndInput once seq is
// exhausted. It stops pulling as soon as s finishes, so an infinite seq
// is safe to drive as long as s eventually becomes Done or Early.
func FromIterator[F, E, A any](run func(F) iteratee.Step[F, E, A], s iteratee.Step[F, E, A], seq iter.Seq[E]) iteratee.Step[F, E, A] {
	next, stop := iter.Pull(seq)
	defer stop()

	for !s.IsDone() {
		e, ok := next()
		if !ok {
			s = run(s.Feed(iteratee.EndInput[E]()))
			break
		}
		s = run(s.Feed(iteratee.El(e)))
	}
	return s
}
