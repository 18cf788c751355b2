// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wfrec

// Nat is the measure codomain. The alias makes non-negativity a property
// of the type rather than a runtime obligation.
type Nat = uint

// NatLess is strict less-than on [Nat], the base relation every
// size-derived descent ultimately bottoms out in.
func NatLess(y, x Nat) bool { return y < x }

// NatAcc certifies any natural number as accessible under strict
// less-than. This is the base fact the whole size-based layer rests on,
// and the only place in the package doing real inductive work.
//
// The certificate for n answers Sub(m), m < n, by deferring to natBelow
// with bound n. NatAcc itself is usable directly as a [WellFounded]
// witness for [NatLess].
func NatAcc(n Nat) Acc[Nat] {
	return Certify(func(m Nat) Acc[Nat] {
		return natBelow(n, m)
	})
}

// natBelow certifies m under the precondition m < bound, by strong
// induction on bound:
//
//   - bound 0: nothing is below zero, so the precondition cannot hold.
//     The branch is unreachable through [NatAcc]'s own descent; reaching
//     it means a caller invoked a continuation on a non-smaller value.
//   - bound k+1: m ≤ k, so any z below m is also below k (z < m ≤ k gives
//     z < k by transitivity), and z's certificate comes from the
//     decremented bound.
//
// The outer quantity bound decreases structurally on every recursive
// call, which is what makes the construction terminate even though the
// certified relation ranges over all naturals.
func natBelow(bound, m Nat) Acc[Nat] {
	if bound == 0 {
		panic("wfrec: no natural number below zero")
	}
	k := bound - 1
	return Certify(func(z Nat) Acc[Nat] {
		return natBelow(k, z)
	})
}
