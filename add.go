// Copyright 2026 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// addSigned returns a+b when the exact sum lies between min and max.
// The bounds are rearranged so that the comparisons cannot themselves
// overflow: max-a is representable for a >= 0, min-a for a < 0.
func addSigned[T constraints.Signed](a, b, min, max T) (T, bool) {
	if (a >= 0 && b <= max-a) || (a < 0 && b >= min-a) {
		return a + b, true
	}
	return 0, false
}

// addUnsigned is the unsigned counterpart of addSigned. Only the upper
// bound needs checking.
func addUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if b <= ^T(0)-a {
		return a + b, true
	}
	return 0, false
}

// AddInt32 returns a+b, or ErrOverflow if the exact sum does not fit in
// an int32.
func AddInt32(a, b int32) (int32, error) {
	sum, ok := addSigned(a, b, math.MinInt32, math.MaxInt32)
	if !ok {
		return 0, fmt.Errorf("%w: %d + %d out of int32 range", ErrOverflow, a, b)
	}
	return sum, nil
}

// CheckedAddInt32 is like AddInt32, reporting failure with a bool instead
// of an error.
func CheckedAddInt32(a, b int32) (int32, bool) {
	return addSigned(a, b, math.MinInt32, math.MaxInt32)
}

// AddUint32 returns a+b, or ErrOverflow if the exact sum does not fit in
// a uint32.
func AddUint32(a, b uint32) (uint32, error) {
	sum, ok := addUnsigned(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %d + %d out of uint32 range", ErrOverflow, a, b)
	}
	return sum, nil
}

// CheckedAddUint32 is like AddUint32, reporting failure with a bool
// instead of an error.
func CheckedAddUint32(a, b uint32) (uint32, bool) {
	return addUnsigned(a, b)
}

// AddInt64 returns a+b, or ErrOverflow if the exact sum does not fit in
// an int64.
func AddInt64(a, b int64) (int64, error) {
	sum, ok := addSigned(a, b, math.MinInt64, math.MaxInt64)
	if !ok {
		return 0, fmt.Errorf("%w: %d + %d out of int64 range", ErrOverflow, a, b)
	}
	return sum, nil
}

// CheckedAddInt64 is like AddInt64, reporting failure with a bool instead
// of an error.
func CheckedAddInt64(a, b int64) (int64, bool) {
	return addSigned(a, b, math.MinInt64, math.MaxInt64)
}
