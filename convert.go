// Copyright 2026 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ConvertUnsigned converts src to the unsigned type TDest, or returns
// ErrTruncation if the value does not survive the conversion unchanged.
// It handles narrowing, widening and same-width conversions alike, so
// callers need not know how the two widths compare on the target
// platform. The usual call form fixes the destination only:
//
//	n, err := safemath.ConvertUnsigned[uint32](length)
func ConvertUnsigned[TDest, TSrc constraints.Unsigned](src TSrc) (TDest, error) {
	converted := TDest(src)
	if TSrc(converted) != src {
		return 0, fmt.Errorf("%w: %d does not fit in %T", ErrTruncation, src, converted)
	}
	return converted, nil
}

// CheckedConvertUnsigned is like ConvertUnsigned, reporting failure with
// a bool instead of an error.
func CheckedConvertUnsigned[TDest, TSrc constraints.Unsigned](src TSrc) (TDest, bool) {
	converted := TDest(src)
	if TSrc(converted) != src {
		return 0, false
	}
	return converted, true
}

// Uint32ToInt32 converts val to an int32, or returns ErrTruncation if it
// exceeds math.MaxInt32.
func Uint32ToInt32(val uint32) (int32, error) {
	if val > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit in int32", ErrTruncation, val)
	}
	return int32(val), nil
}

// CheckedUint32ToInt32 is like Uint32ToInt32, reporting failure with a
// bool instead of an error.
func CheckedUint32ToInt32(val uint32) (int32, bool) {
	if val > math.MaxInt32 {
		return 0, false
	}
	return int32(val), true
}

// UintToInt converts val to an int, or returns ErrTruncation if it
// exceeds math.MaxInt.
func UintToInt(val uint) (int, error) {
	if val > math.MaxInt {
		return 0, fmt.Errorf("%w: %d does not fit in int", ErrTruncation, val)
	}
	return int(val), nil
}

// CheckedUintToInt is like UintToInt, reporting failure with a bool
// instead of an error.
func CheckedUintToInt(val uint) (int, bool) {
	if val > math.MaxInt {
		return 0, false
	}
	return int(val), true
}
