// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wfrec_test

import (
	"testing"

	"code.hybscloud.com/wfrec"
)

func TestAccRecNoDescent(t *testing.T) {
	acc := wfrec.Certify(func(uint) wfrec.Acc[uint] {
		t.Fatal("Sub invoked for a step that never descends")
		return wfrec.Acc[uint]{}
	})
	got := wfrec.AccRec(7, acc, func(x uint, _ func(uint) string) string {
		if x != 7 {
			t.Fatalf("step got %d, want 7", x)
		}
		return "done"
	})
	if got != "done" {
		t.Fatalf("got %q, want %q", got, "done")
	}
}

func TestAccRecDescends(t *testing.T) {
	// Hand-built witness for countdown-by-one on small naturals.
	var wit func(uint) wfrec.Acc[uint]
	wit = func(uint) wfrec.Acc[uint] {
		return wfrec.Certify(func(y uint) wfrec.Acc[uint] { return wit(y) })
	}
	got := wfrec.AccRec(5, wit(5), func(n uint, rec func(uint) uint) uint {
		if n == 0 {
			return 0
		}
		return n + rec(n-1)
	})
	if got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
}

func TestAccIndSameEngine(t *testing.T) {
	step := func(n uint, ih func(uint) bool) bool {
		if n == 0 {
			return true
		}
		return ih(n - 1)
	}
	got := wfrec.AccInd(4, wfrec.NatAcc(4), step)
	if !got {
		t.Fatal("induction on 4 failed")
	}
}

func TestZeroAccSubPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Sub on zero Acc did not panic")
		}
	}()
	var zero wfrec.Acc[int]
	zero.Sub(1)
}

// Certificates are closed under the relation: a sub-certificate obtained
// from x's certificate must itself yield certificates for all values
// below it, down to the base.
func TestCertificateClosedUnderRelation(t *testing.T) {
	accX := wfrec.SizeWF(wfrec.SliceSize[[]int])([]int{1, 2, 3})
	accY := accX.Sub([]int{1, 2})
	accZ := accY.Sub([]int{1})

	depth := wfrec.AccRec([]int{1}, accZ, func(s []int, rec func([]int) int) int {
		if len(s) == 0 {
			return 0
		}
		return 1 + rec(s[1:])
	})
	if depth != 1 {
		t.Fatalf("depth = %d, want 1", depth)
	}
}
