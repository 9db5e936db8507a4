// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iteratee

// Option represents a value that may or may not be present. head and peek
// use it for "no element before End" vs "saw an element", the same
// bool-tag-plus-payload encoding kont's own Either uses for its Left/Right
// variants.
type Option[A any] struct {
	ok    bool
	value A
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None is the absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Get returns the wrapped value and true, or the zero value and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// IsSome reports whether the Option carries a value.
func (o Option[A]) IsSome() bool {
	return o.ok
}
