// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee

// JoinI collapses a Step[F, A, Step[F, B, C]] into F[Step[F, A, C]] — an
// outer consumer over an A-stream whose eventual result is itself an inner
// consumer over a B-stream.
//
// If the outer Step is still Cont, JoinI propagates through it unchanged:
// it returns an effect that, once resolved, produces a new Cont which
// forwards each Input[A] into the outer continuation and recursively joins
// whatever outer Step comes back.
//
// Once the outer Step completes (Done or Early), JoinI discards any
// leftover the outer Step carried — that leftover belongs to the A-stream,
// and there is no further A-stream consumer left to replay it into — and
// drives the inner Step to completion by repeatedly feeding it
// Input.End. If the inner Step never reaches Done/Early under repeated
// End-feeding, JoinI diverges; this is documented, not detected
// (spec.md §7).
func JoinI[F, A, B, C any](m Monad[F], outer Step[F, A, Step[F, B, C]]) F {
	if outer.tag == stepCont {
		k := outer.k
		return m.Pure(Cont[F, A, C](m, func(in Input[A]) F {
			return m.FlatMap(k(in), func(v any) F {
				return JoinI[F, A, B, C](m, v.(Step[F, A, Step[F, B, C]]))
			})
		}))
	}
	return driveToDone[F, A, B, C](m, outer.result)
}

// driveToDone repeatedly feeds End to inner until it completes, then wraps
// its result as a plain Done Step[F, A, C] — joinI never produces Early,
// since any leftover belongs to the inner B-stream and has no A-stream
// counterpart to carry it.
func driveToDone[F, A, B, C any](m Monad[F], inner Step[F, B, C]) F {
	if inner.tag != stepCont {
		return m.Pure(Done[F, A, C](m, inner.result))
	}
	k := inner.k
	return m.FlatMap(k(EndInput[B]()), func(v any) F {
		return driveToDone[F, A, B, C](m, v.(Step[F, B, C]))
	})
}
