// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sources

import (
	"bytes"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/streamkit/iteratee"
	"github.com/streamkit/iteratee/kont"
)

// lineAccumulator buffers raw bytes across reads and splits off complete
// lines, holding back a trailing partial line until the next feed
// completes it. A bufio.Reader can't be used for this directly: its
// ReadString consumes a trailing partial line on io.EOF instead of
// leaving it for the next read, which is exactly the bytes a file still
// being appended to needs kept.
type lineAccumulator struct {
	buf []byte
}

func (la *lineAccumulator) feed(chunk []byte) []string {
	la.buf = append(la.buf, chunk...)
	var lines []string
	for {
		i := bytes.IndexByte(la.buf, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(la.buf[:i]))
		la.buf = la.buf[i+1:]
	}
	return lines
}

func readAvailable(f *os.File, la *lineAccumulator) ([]string, error) {
	buf := make([]byte, 4096)
	var lines []string
	for {
		n, err := f.Read(buf)
		if n > 0 {
			lines = append(lines, la.feed(buf[:n])...)
		}
		if err != nil {
			if err == io.EOF {
				return lines, nil
			}
			return lines, err
		}
		if n == 0 {
			return lines, nil
		}
	}
}

// fileHandle bundles the open file and its watcher as the single
// resource Bracket acquires and releases around the tailing loop.
type fileHandle struct {
	f       *os.File
	watcher *fsnotify.Watcher
}

// FromFile tails path, feeding s the lines appended to it as they
// arrive. It reads whatever is already in the file first, then watches
// path with fsnotify and feeds newly written lines on every Write event,
// the same watcher.Events/watcher.Errors select tombstreams' doStream
// uses for its own dying channel. FromFile returns once s finishes, or
// once path is removed or renamed away, in which case it feeds
// iteratee.EndInput first.
//
// Opening the file and the watcher happens before any resource exists to
// release, so those failures surface as a plain kont.Left. Once both are
// open, the tailing loop itself runs under kont.Bracket so watcher.Close
// and f.Close happen exactly once regardless of how the loop ends —
// kont.ThrowError raises a read/watch failure, and Bracket's acquire/
// use/release guarantees release still runs, per this repository's
// error-handling convention (SPEC_FULL.md §A.1).
func FromFile[F, A any](run func(F) iteratee.Step[F, string, A], s iteratee.Step[F, string, A], path string) kont.Either[error, iteratee.Step[F, string, A]] {
	f, err := os.Open(path)
	if err != nil {
		return kont.Left[error, iteratee.Step[F, string, A]](err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return kont.Left[error, iteratee.Step[F, string, A]](err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		f.Close()
		return kont.Left[error, iteratee.Step[F, string, A]](err)
	}

	handle := fileHandle{f: f, watcher: watcher}
	comp := kont.Bracket[error, fileHandle, iteratee.Step[F, string, A]](
		kont.Return[kont.Resumed](handle),
		func(h fileHandle) kont.Cont[kont.Resumed, struct{}] {
			h.watcher.Close()
			h.f.Close()
			return kont.Return[kont.Resumed](struct{}{})
		},
		func(h fileHandle) kont.Cont[kont.Resumed, iteratee.Step[F, string, A]] {
			return tailFile(run, s, h)
		},
	)

	result := kont.RunWith[kont.Resumed, kont.Either[error, iteratee.Step[F, string, A]]](comp,
		func(e kont.Either[error, iteratee.Step[F, string, A]]) kont.Resumed { return e })
	return result.(kont.Either[error, iteratee.Step[F, string, A]])
}

// tailFile drives the read/watch loop to completion, raising read or
// watch failures via kont.ThrowError so FromFile's Bracket still releases
// the file and watcher before the error reaches the caller.
func tailFile[F, A any](run func(F) iteratee.Step[F, string, A], s iteratee.Step[F, string, A], h fileHandle) kont.Cont[kont.Resumed, iteratee.Step[F, string, A]] {
	var la lineAccumulator
	lines, err := readAvailable(h.f, &la)
	if err != nil {
		return kont.ThrowError[error, iteratee.Step[F, string, A]](err)
	}
	if len(lines) > 0 {
		s = run(s.Feed(iteratee.NormalizeInput(lines)))
	}

	for !s.IsDone() {
		select {
		case event, ok := <-h.watcher.Events:
			if !ok {
				return kont.Return[kont.Resumed](run(s.Feed(iteratee.EndInput[string]())))
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return kont.Return[kont.Resumed](run(s.Feed(iteratee.EndInput[string]())))
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}
			lines, err := readAvailable(h.f, &la)
			if err != nil {
				return kont.ThrowError[error, iteratee.Step[F, string, A]](err)
			}
			if len(lines) > 0 {
				s = run(s.Feed(iteratee.NormalizeInput(lines)))
			} else {
				s = run(s.Feed(iteratee.EmptyInput[string]()))
			}
		case err, ok := <-h.watcher.Errors:
			if !ok {
				return kont.Return[kont.Resumed](run(s.Feed(iteratee.EndInput[string]())))
			}
			return kont.ThrowError[error, iteratee.Step[F, string, A]](err)
		}
	}
	return kont.Return[kont.Resumed](s)
}
