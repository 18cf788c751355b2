// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wfrec

// WellFounded witnesses that a relation admits no infinite
// strictly-descending chain: it produces an [Acc] certificate for any
// value of the domain, with no partiality and no panic.
//
// Faithfulness is the caller's obligation. A witness that fabricates
// certificates for a relation with an actual infinite descent is not
// detected; it surfaces as non-termination or stack exhaustion at the
// combinator call that exercises the bad chain.
type WellFounded[A any] func(x A) Acc[A]

// WFRec performs well-founded recursion: it folds step over the
// certificate the witness produces for x. Callers never build
// certificates by hand.
func WFRec[A, B any](wf WellFounded[A], x A, step func(x A, rec func(y A) B) B) B {
	return AccRec(x, wf(x), step)
}

// WFInd is the induction-principle counterpart of [WFRec]; see [AccInd].
func WFInd[A, P any](wf WellFounded[A], x A, step func(x A, ih func(y A) P) P) P {
	return AccInd(x, wf(x), step)
}

// Fix returns the recursive function defined by step, the fixed point
// justified by the witness. Each application builds a fresh certificate;
// results are not memoized.
func Fix[A, B any](wf WellFounded[A], step func(x A, rec func(y A) B) B) func(A) B {
	return func(x A) B {
		return WFRec(wf, x, step)
	}
}

// InverseImageWF transports a witness backwards along a function:
// if r is well-founded on B, then On(f, r) is well-founded on A. Any
// descending chain in A maps under f to a descending chain in B, which
// must be finite.
//
// The transported certificate is built by recursion on the B-side
// certificate alone, so its construction terminates whenever the given
// witness does.
func InverseImageWF[A, B any](f func(A) B, wf WellFounded[B]) WellFounded[A] {
	var transport func(fb Acc[B]) Acc[A]
	transport = func(fb Acc[B]) Acc[A] {
		return Certify(func(y A) Acc[A] {
			return transport(fb.Sub(f(y)))
		})
	}
	return func(x A) Acc[A] {
		return transport(wf(f(x)))
	}
}

// LexWF combines two witnesses into a witness for the lexicographic
// product [Lex](ra, rb). The pair certificate nests the component
// certificates: descending on the first component restarts the second at
// a fresh certificate, descending on a tie reuses the first component's
// certificate unchanged. This is the shape that justifies Ackermann-style
// recursions, where the second argument may grow arbitrarily whenever the
// first shrinks.
//
// Contract: ra must be a strict order whose incomparability is transitive
// (measure-derived orders such as [Smaller] qualify), so that a tie on
// first components keeps the outer certificate valid.
func LexWF[A, B any](ra Rel[A], wfa WellFounded[A], wfb WellFounded[B]) WellFounded[Pair[A, B]] {
	var build func(accA Acc[A], a A, accB Acc[B]) Acc[Pair[A, B]]
	build = func(accA Acc[A], a A, accB Acc[B]) Acc[Pair[A, B]] {
		return Certify(func(p Pair[A, B]) Acc[Pair[A, B]] {
			if ra(p.Fst, a) {
				// First component shrank: the second restarts from scratch.
				return build(accA.Sub(p.Fst), p.Fst, wfb(p.Snd))
			}
			// Tie on the first component: the second must have shrunk.
			return build(accA, p.Fst, accB.Sub(p.Snd))
		})
	}
	return func(p Pair[A, B]) Acc[Pair[A, B]] {
		return build(wfa(p.Fst), p.Fst, wfb(p.Snd))
	}
}
