// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wfrec

// Sized assigns a natural-number measure to values of A. The measure need
// not be injective: values sharing a measure are fine, certificates are
// built per value, never per measure class.
type Sized[A any] func(x A) Nat

// Smaller derives the strict order induced by a measure:
// Smaller(size)(y, x) holds when size(y) < size(x). Irreflexive and
// transitive by construction, and well-founded via [SizeWF].
func Smaller[A any](size Sized[A]) Rel[A] {
	return On(size, NatLess)
}

// SizeWF synthesizes a [WellFounded] witness for [Smaller](size) with no
// witness supplied by the caller: [NatAcc] establishes that less-than on
// the measure codomain is well-founded, and the witness is transported
// backwards along the measure. Every descent step strictly decreases the
// natural-number bound inside the transported certificate, which is
// already known to terminate.
func SizeWF[A any](size Sized[A]) WellFounded[A] {
	return InverseImageWF(size, WellFounded[Nat](NatAcc))
}

// SizeRec performs recursion justified by a decreasing measure: step may
// recurse, through rec, on any value of strictly smaller measure.
func SizeRec[A, B any](size Sized[A], x A, step func(x A, rec func(y A) B) B) B {
	return WFRec(SizeWF(size), x, step)
}

// SizeInd is the induction-principle counterpart of [SizeRec]; see
// [AccInd]. The hypothesis ih is valid on every value of strictly smaller
// measure.
func SizeInd[A, P any](size Sized[A], x A, step func(x A, ih func(y A) P) P) P {
	return WFInd(SizeWF(size), x, step)
}

// NatSize measures a natural number by itself.
func NatSize(n Nat) Nat { return n }

// SliceSize measures a slice by its length.
func SliceSize[S ~[]E, E any](s S) Nat { return Nat(len(s)) }

// StringSize measures a string by its byte length.
func StringSize(s string) Nat { return Nat(len(s)) }
