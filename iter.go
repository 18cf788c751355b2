// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wfrec

// Iterative realization of size-based descent. [SizeRec] recurses once
// per descent step on the Go call stack; very deep descents can exhaust
// it. SizeIter defunctionalizes the descent into tagged [Step] values and
// evaluates them in a flat loop with an explicit frame stack, so the Go
// stack stays constant regardless of depth.

// Step is one move of an iterative descent: either a final result, or a
// strictly smaller value to continue from together with a combiner
// applied to the recursive result on the way back up.
type Step[A, B any] struct {
	done    bool
	result  B
	next    A
	combine func(B) B
}

// Done finishes the descent with a final result.
func Done[A, B any](result B) Step[A, B] {
	return Step[A, B]{done: true, result: result}
}

// Descend continues the descent at next. combine receives the result
// computed for next and produces the result for the current value; a nil
// combine passes the result through unchanged (plain tail descent).
func Descend[A, B any](next A, combine func(B) B) Step[A, B] {
	return Step[A, B]{next: next, combine: combine}
}

// SizeIter evaluates a size-decreasing descent iteratively. step is
// consulted once per value; Descend moves must strictly decrease the
// measure. Unlike the closure-based combinators, the measure is in hand
// here, so a non-decreasing move panics instead of descending forever.
//
// Semantically SizeIter(size, x, step) agrees with [SizeRec] on step
// functions in descend-then-combine form; it trades the general
// any-position continuation for bounded Go stack usage.
func SizeIter[A, B any](size Sized[A], x A, step func(x A) Step[A, B]) B {
	var frames []func(B) B
	cur := x
	for {
		s := step(cur)
		if s.done {
			result := s.result
			for i := len(frames) - 1; i >= 0; i-- {
				result = frames[i](result)
			}
			return result
		}
		if size(s.next) >= size(cur) {
			panic("wfrec: Descend does not decrease the measure")
		}
		if s.combine != nil {
			frames = append(frames, s.combine)
		}
		cur = s.next
	}
}
