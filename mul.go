// Copyright 2026 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// mulUnsigned returns a*b when the exact product fits in T. The check
// divides the type maximum instead of multiplying, so it cannot overflow.
func mulUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if a == 0 || b <= ^T(0)/a {
		return a * b, true
	}
	return 0, false
}

// mulInt64 returns a*b when the exact product fits in an int64. Each sign
// combination has its own division-based bound; a == 0 must be excluded
// before dividing by a.
func mulInt64(a, b int64) (int64, bool) {
	var overflow bool
	if a > 0 {
		if b > 0 {
			overflow = a > math.MaxInt64/b
		} else {
			overflow = b < math.MinInt64/a
		}
	} else {
		if b > 0 {
			overflow = a < math.MinInt64/b
		} else {
			overflow = a != 0 && b < math.MaxInt64/a
		}
	}
	if overflow {
		return 0, false
	}
	return a * b, true
}

// MulUint32 returns the product of two or more uint32 factors, or
// ErrOverflow if an intermediate product does not fit in a uint32.
// Factors multiply left to right and the first overflow stops the chain,
// so a later zero factor does not rescue an overflowing prefix.
func MulUint32(a, b uint32, more ...uint32) (uint32, error) {
	product, ok := mulUnsigned(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %d * %d out of uint32 range", ErrOverflow, a, b)
	}
	for _, f := range more {
		next, ok := mulUnsigned(product, f)
		if !ok {
			return 0, fmt.Errorf("%w: %d * %d out of uint32 range", ErrOverflow, product, f)
		}
		product = next
	}
	return product, nil
}

// CheckedMulUint32 is like MulUint32, reporting failure with a bool
// instead of an error.
func CheckedMulUint32(a, b uint32, more ...uint32) (uint32, bool) {
	product, ok := mulUnsigned(a, b)
	if !ok {
		return 0, false
	}
	for _, f := range more {
		if product, ok = mulUnsigned(product, f); !ok {
			return 0, false
		}
	}
	return product, true
}

// MulUint returns a*b, or ErrOverflow if the exact product does not fit
// in a uint.
func MulUint(a, b uint) (uint, error) {
	product, ok := mulUnsigned(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %d * %d out of uint range", ErrOverflow, a, b)
	}
	return product, nil
}

// CheckedMulUint is like MulUint, reporting failure with a bool instead
// of an error.
func CheckedMulUint(a, b uint) (uint, bool) {
	return mulUnsigned(a, b)
}

// MulInt64 returns a*b, or ErrOverflow if the exact product does not fit
// in an int64.
func MulInt64(a, b int64) (int64, error) {
	product, ok := mulInt64(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %d * %d out of int64 range", ErrOverflow, a, b)
	}
	return product, nil
}

// CheckedMulInt64 is like MulInt64, reporting failure with a bool instead
// of an error.
func CheckedMulInt64(a, b int64) (int64, bool) {
	return mulInt64(a, b)
}
