// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee_test

import (
	"reflect"
	"testing"

	"github.com/streamkit/iteratee"
)

func TestChunkToSlice(t *testing.T) {
	// Input.chunk(e1,e2,es).toVector = [e1,e2] ++ es
	got := iteratee.Chunk(1, 2, []int{3, 4}).ToSlice()
	want := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestElToSlice(t *testing.T) {
	got := iteratee.El(7).ToSlice()
	want := []int{7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEmptyAndEndToSlice(t *testing.T) {
	if got := iteratee.EmptyInput[int]().ToSlice(); got != nil {
		t.Fatalf("empty.ToSlice() = %v, want nil", got)
	}
	if got := iteratee.EndInput[int]().ToSlice(); got != nil {
		t.Fatalf("end.ToSlice() = %v, want nil", got)
	}
}

func TestInputIsEndIsEmpty(t *testing.T) {
	if !iteratee.EndInput[int]().IsEnd() {
		t.Fatal("end.IsEnd() = false")
	}
	if iteratee.El(1).IsEnd() {
		t.Fatal("el.IsEnd() = true")
	}
	if !iteratee.EmptyInput[int]().IsEmpty() {
		t.Fatal("empty.IsEmpty() = false")
	}
	if iteratee.Chunk(1, 2, nil).IsEmpty() {
		t.Fatal("chunk.IsEmpty() = true")
	}
}

func TestInputLen(t *testing.T) {
	cases := []struct {
		name string
		in   iteratee.Input[int]
		want int
	}{
		{"empty", iteratee.EmptyInput[int](), 0},
		{"end", iteratee.EndInput[int](), 0},
		{"el", iteratee.El(5), 1},
		{"chunk no rest", iteratee.Chunk(1, 2, nil), 2},
		{"chunk with rest", iteratee.Chunk(1, 2, []int{3, 4, 5}), 5},
	}
	for _, c := range cases {
		if got := c.in.Len(); got != c.want {
			t.Errorf("%s: Len() = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestNormalizeInput(t *testing.T) {
	if got := iteratee.NormalizeInput[int](nil); !got.IsEmpty() {
		t.Fatalf("NormalizeInput(nil) = %v, want Empty", got)
	}
	if got := iteratee.NormalizeInput([]int{9}); got.ToSlice() == nil || got.ToSlice()[0] != 9 {
		t.Fatalf("NormalizeInput([9]) = %v, want El(9)", got)
	}
	got := iteratee.NormalizeInput([]int{1, 2, 3})
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got.ToSlice(), want) {
		t.Fatalf("NormalizeInput([1,2,3]).ToSlice() = %v, want %v", got.ToSlice(), want)
	}
}

func TestFoldInputDispatch(t *testing.T) {
	describe := func(in iteratee.Input[int]) string {
		return iteratee.FoldInputFunc[int, string](in,
			func() string { return "empty" },
			func(e int) string { return "el" },
			func(e1, e2 int, rest []int) string { return "chunk" },
			func() string { return "end" },
		)
	}
	cases := []struct {
		in   iteratee.Input[int]
		want string
	}{
		{iteratee.EmptyInput[int](), "empty"},
		{iteratee.El(1), "el"},
		{iteratee.Chunk(1, 2, nil), "chunk"},
		{iteratee.EndInput[int](), "end"},
	}
	for _, c := range cases {
		if got := describe(c.in); got != c.want {
			t.Errorf("describe(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
