// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wfrec

// Acc is an accessibility certificate: Acc[A] witnesses that a value of
// type A admits no infinite strictly-descending chain under some relation.
// The certificate carries a single capability, Sub, producing the
// certificate of any smaller value on demand.
//
// Certificates are pure values: never cached, never mutated, built lazily
// per combinator invocation and discarded when it returns. Two
// certificates for the same value need not be the same instance; folding
// either one with the same step function gives the same result.
//
// In a proof-carrying language Sub would also demand evidence that its
// argument is related to the certified value. That evidence has no runtime
// content here and is erased; the precondition remains as the Sub contract.
type Acc[A any] struct {
	sub func(A) Acc[A]
}

// Certify creates a certificate from a sub-certificate producer.
//
// Construction discipline, not a runtime check, keeps certificates honest:
// sub must be obtained by structural recursion on an independent quantity
// already known to terminate (see [NatAcc]). A fabricated sub that admits
// an infinite descent is not detected — it manifests as non-termination or
// stack exhaustion at the call site that exercises the bad chain.
func Certify[A any](sub func(y A) Acc[A]) Acc[A] {
	return Acc[A]{sub: sub}
}

// Sub returns the certificate for y.
//
// Contract: y must actually be smaller than the certified value under the
// relation this certificate was built for. Sub cannot verify this; callers
// that go through [AccRec]/[AccInd] never violate it because those only
// surface Sub through the descent continuation.
//
// Panics on the zero Acc value, which certifies nothing.
func (a Acc[A]) Sub(y A) Acc[A] {
	if a.sub == nil {
		panic("wfrec: Sub on zero Acc certificate")
	}
	return a.sub(y)
}

// AccRec folds a step function over a certificate (well-founded recursion).
//
// step receives the current value and a continuation rec; applying rec to
// a smaller value recurses using the sub-certificate embedded in acc. No
// recursion limit is needed: every rec call consumes a strictly smaller
// sub-certificate, so the depth is bounded by the certificate's own
// well-founded depth.
//
// Contract: step must invoke rec only on values the relation actually
// relates to its argument.
func AccRec[A, B any](x A, acc Acc[A], step func(x A, rec func(y A) B) B) B {
	return step(x, func(y A) B {
		return AccRec(y, acc.Sub(y), step)
	})
}

// AccInd is the induction-principle reading of [AccRec]: the step
// establishes a conclusion P for its argument given an induction
// hypothesis ih valid on all smaller values. Go cannot express that P's
// type depends on x, so P is an ordinary type parameter and the engine is
// shared; the name is kept for call sites that are proofs in spirit.
func AccInd[A, P any](x A, acc Acc[A], step func(x A, ih func(y A) P) P) P {
	return AccRec(x, acc, step)
}
