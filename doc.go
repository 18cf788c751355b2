// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wfrec provides well-founded recursion combinators in Go.
//
// The package lets a caller define recursive computations whose
// termination is not visible in the shape of their input — no structural
// descent on a slice or tree — but is visible in some decreasing measure
// of it: Euclidean algorithms, shrinking worklists, graph-size
// reductions. The core type [Acc] is an accessibility certificate, a
// lazily built witness that a value admits no infinite strictly-descending
// chain under a relation; [AccRec] and [AccInd] fold a step function over
// one.
//
// # Design Philosophy
//
// wfrec provides:
//   - A minimal certificate type and two generic fold/induction engines
//   - Witness combinators that keep callers out of the certificate business
//   - A size-based convenience layer with the witness synthesized from a measure
//
// Certificates are pure, immutable, and built on demand — never cached,
// shared, or compared. Construction discipline replaces runtime checking:
// the only certificate factory doing real work, [NatAcc], builds by strong
// induction on the number itself, and everything else is transported from
// it. There is no error path anywhere; misuse of the few contracts panics
// with a "wfrec:"-prefixed message or, for an unfaithful caller-supplied
// witness, shows up as non-termination at the call site that exercises the
// bad descent.
//
// # Core Operations
//
//   - [Certify]: Create a certificate from a sub-certificate producer
//   - [Acc.Sub]: The certificate of a smaller value
//   - [AccRec]: Fold a step function over a certificate
//   - [AccInd]: Induction-principle reading of AccRec
//
// # Witnesses
//
// A [WellFounded] witness produces a certificate for any value of its
// domain. Given one, the wrapper pair runs recursion directly:
//
//   - [WFRec], [WFInd]: Recursion/induction from a witness
//   - [Fix]: The recursive function itself, as a func value
//
// Witness combinators build new witnesses from old:
//
//   - [NatAcc]: Strict less-than on [Nat] is well-founded (the base fact)
//   - [InverseImageWF]: Pull a witness back along any function
//   - [LexWF]: Lexicographic product of two witnesses
//
// # Size-Based Recursion
//
// A [Sized] capability assigns a [Nat] measure to values; [Smaller]
// derives the strict order measure(y) < measure(x). [SizeWF] synthesizes
// the witness with no caller input, so the common path is just:
//
//	fact := func(n wfrec.Nat) wfrec.Nat {
//		return wfrec.SizeRec(wfrec.NatSize, n, func(n wfrec.Nat, rec func(wfrec.Nat) wfrec.Nat) wfrec.Nat {
//			if n == 0 {
//				return 1
//			}
//			return n * rec(n-1)
//		})
//	}
//
//   - [SizeRec], [SizeInd]: Recursion/induction from a measure alone
//   - [NatSize], [SliceSize], [StringSize]: Built-in measures
//
// # Iterative Descent
//
// [SizeRec] consumes one Go stack frame per descent step. For descents
// deep enough to threaten the stack, [SizeIter] evaluates a
// defunctionalized descent — tagged [Step] values instead of closures —
// in a flat loop with an explicit frame stack:
//
//   - [Done]: Finish with a result
//   - [Descend]: Continue at a strictly smaller value, combining on return
//   - [SizeIter]: The iterative evaluator (panics on a non-decreasing move)
//
// # Contracts
//
// The combinators validate nothing about relations, measures, or
// witnesses; they are total over faithful inputs. The continuation handed
// to a step function must be invoked only on values actually smaller than
// the step's argument. Size-derived certificates carry a decreasing
// natural-number bound, so violating that contract through them eventually
// trips the vacuous below-zero branch and panics rather than looping.
package wfrec
