// Copyright 2026 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import (
	"fmt"
	"math"
)

// subInt32 returns a-b when the exact difference fits in an int32. The
// bound is picked by the sign of b so that min+b and max+b stay in range.
func subInt32(a, b int32) (int32, bool) {
	if (b >= 0 && a >= math.MinInt32+b) || (b < 0 && a <= math.MaxInt32+b) {
		return a - b, true
	}
	return 0, false
}

// SubInt32 returns a-b, or ErrOverflow if the exact difference does not
// fit in an int32.
func SubInt32(a, b int32) (int32, error) {
	diff, ok := subInt32(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %d - %d out of int32 range", ErrOverflow, a, b)
	}
	return diff, nil
}

// CheckedSubInt32 is like SubInt32, reporting failure with a bool instead
// of an error.
func CheckedSubInt32(a, b int32) (int32, bool) {
	return subInt32(a, b)
}
