// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sources_test

import (
	"reflect"
	"testing"

	"github.com/streamkit/iteratee"
	"github.com/streamkit/iteratee/effects"
	"github.com/streamkit/iteratee/sources"
)

func TestFromSliceDrainsEverything(t *testing.T) {
	m := effects.Sync
	s := iteratee.Drain[any, int](m)

	final := sources.FromSlice[any, int, []int](effects.Run[int, []int], s, []int{1, 2, 3, 4, 5}, 2)

	if !final.IsDone() {
		t.Fatal("expected a finished step")
	}
	want := []int{1, 2, 3, 4, 5}
	if got := final.UnsafeValue(); !reflect.DeepEqual(got, want) {
		t.Fatalf("value = %v, want %v", got, want)
	}
}

func TestFromSliceStopsEarly(t *testing.T) {
	m := effects.Sync
	s := iteratee.Take[any, int](m, 2)

	final := sources.FromSlice[any, int, []int](effects.Run[int, []int], s, []int{1, 2, 3, 4, 5}, 1)

	want := []int{1, 2}
	if got := final.UnsafeValue(); !reflect.DeepEqual(got, want) {
		t.Fatalf("value = %v, want %v", got, want)
	}
}

func TestFromSliceEmpty(t *testing.T) {
	m := effects.Sync
	s := iteratee.Drain[any, int](m)

	final := sources.FromSlice[any, int, []int](effects.Run[int, []int], s, nil, 4)

	if !final.IsDone() {
		t.Fatal("expected a finished step")
	}
	if got := final.UnsafeValue(); len(got) != 0 {
		t.Fatalf("value = %v, want empty", got)
	}
}
