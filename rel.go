// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wfrec

// Rel is a binary relation on A. Rel(y, x) reports whether y is smaller
// than x. A relation is only useful to this package when it is
// well-founded; the package never checks that, it consumes a
// [WellFounded] witness instead.
type Rel[A any] func(y, x A) bool

// On pulls a relation back along a function: On(f, r)(y, x) holds exactly
// when r(f(y), f(x)) does. The pullback of a well-founded relation is
// well-founded; [InverseImageWF] transports the witness.
func On[A, B any](f func(A) B, r Rel[B]) Rel[A] {
	return func(y, x A) bool {
		return r(f(y), f(x))
	}
}

// Pair groups two values for lexicographic descent.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MkPair creates a Pair with both components inferred.
func MkPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Lex orders pairs lexicographically: a pair is smaller when its first
// component is smaller under ra, or when the first components tie
// (neither smaller than the other) and the second component is smaller
// under rb. For strict orders ra, the tie case coincides with equal first
// components up to ra.
func Lex[A, B any](ra Rel[A], rb Rel[B]) Rel[Pair[A, B]] {
	return func(y, x Pair[A, B]) bool {
		if ra(y.Fst, x.Fst) {
			return true
		}
		if ra(x.Fst, y.Fst) {
			return false
		}
		return rb(y.Snd, x.Snd)
	}
}
