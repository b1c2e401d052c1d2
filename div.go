// Copyright 2026 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import "fmt"

// CeilDivUint32 returns a/b rounded up to the next integer, or
// ErrDivisionByZero if b is zero. The rounded quotient always fits:
// (a-1)/b+1 is at most a.
func CeilDivUint32(a, b uint32) (uint32, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
	}
	if a == 0 {
		return 0, nil
	}
	return (a-1)/b + 1, nil
}

// CheckedCeilDivUint32 is like CeilDivUint32, reporting failure with a
// bool instead of an error.
func CheckedCeilDivUint32(a, b uint32) (uint32, bool) {
	if b == 0 {
		return 0, false
	}
	if a == 0 {
		return 0, true
	}
	return (a-1)/b + 1, true
}

// RoundUpUint32 returns the smallest multiple of multipleOf that is
// greater than or equal to val. It returns ErrInvalidArgument if
// multipleOf is zero and ErrOverflow if the next multiple does not fit
// in a uint32.
func RoundUpUint32(val, multipleOf uint32) (uint32, error) {
	if multipleOf == 0 {
		return 0, fmt.Errorf("%w: cannot round %d up to a multiple of 0", ErrInvalidArgument, val)
	}
	remainder := val % multipleOf
	if remainder == 0 {
		return val, nil
	}
	return AddUint32(val, multipleOf-remainder)
}

// CheckedRoundUpUint32 is like RoundUpUint32, reporting failure with a
// bool instead of an error.
func CheckedRoundUpUint32(val, multipleOf uint32) (uint32, bool) {
	if multipleOf == 0 {
		return 0, false
	}
	remainder := val % multipleOf
	if remainder == 0 {
		return val, true
	}
	return addUnsigned(val, multipleOf-remainder)
}
