// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wfrec_test

import (
	"testing"

	"code.hybscloud.com/wfrec"
)

// BenchmarkSizeRecFactorial measures the closure-based descent, witness
// synthesis included.
func BenchmarkSizeRecFactorial(b *testing.B) {
	for b.Loop() {
		_ = wfrec.SizeRec(wfrec.NatSize, 12, factorialStep)
	}
}

// BenchmarkSizeIterFactorial measures the defunctionalized descent on the
// same computation.
func BenchmarkSizeIterFactorial(b *testing.B) {
	for b.Loop() {
		_ = wfrec.SizeIter(wfrec.NatSize, 12, func(n wfrec.Nat) wfrec.Step[wfrec.Nat, wfrec.Nat] {
			if n == 0 {
				return wfrec.Done[wfrec.Nat](wfrec.Nat(1))
			}
			return wfrec.Descend(n-1, func(below wfrec.Nat) wfrec.Nat { return n * below })
		})
	}
}

// BenchmarkNatAccDescent measures raw certificate construction and
// consumption without the size layer.
func BenchmarkNatAccDescent(b *testing.B) {
	for b.Loop() {
		_ = countDescent(64, wfrec.NatAcc(64))
	}
}

// BenchmarkLexWFAckermann measures nested certificate construction on a
// lexicographic descent.
func BenchmarkLexWFAckermann(b *testing.B) {
	natWF := wfrec.WellFounded[wfrec.Nat](wfrec.NatAcc)
	ack := wfrec.Fix(wfrec.LexWF(wfrec.NatLess, natWF, natWF), func(p wfrec.Pair[wfrec.Nat, wfrec.Nat], rec func(wfrec.Pair[wfrec.Nat, wfrec.Nat]) wfrec.Nat) wfrec.Nat {
		switch {
		case p.Fst == 0:
			return p.Snd + 1
		case p.Snd == 0:
			return rec(wfrec.MkPair(p.Fst-1, wfrec.Nat(1)))
		default:
			return rec(wfrec.MkPair(p.Fst-1, rec(wfrec.MkPair(p.Fst, p.Snd-1))))
		}
	})
	for b.Loop() {
		_ = ack(wfrec.MkPair(wfrec.Nat(2), wfrec.Nat(3)))
	}
}
