// Copyright 2026 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extent

import (
	"fmt"

	"github.com/nlpodyssey/safemath"
)

// ElemCount returns the number of elements in a buffer with the given
// dimensions. An empty dims slice describes a scalar and counts as one
// element; a zero dimension makes the whole count zero.
func ElemCount(dims []uint32) (uint32, error) {
	count := uint32(1)
	for _, d := range dims {
		c, err := safemath.MulUint32(count, d)
		if err != nil {
			return 0, fmt.Errorf("element count of dimensions %v: %w", dims, err)
		}
		count = c
	}
	return count, nil
}

// ByteSize returns the total byte size of a buffer holding ElemCount(dims)
// elements of elemSize bytes each. An element size of zero is rejected
// with ErrInvalidArgument.
func ByteSize(dims []uint32, elemSize uint32) (uint, error) {
	if elemSize == 0 {
		return 0, fmt.Errorf("%w: element size is 0", safemath.ErrInvalidArgument)
	}
	count, err := ElemCount(dims)
	if err != nil {
		return 0, err
	}
	size, err := safemath.MulUint(uint(count), uint(elemSize))
	if err != nil {
		return 0, fmt.Errorf("byte size of dimensions %v: %w", dims, err)
	}
	return size, nil
}

// ByteSizeUint32 is like ByteSize but narrows the result to a uint32, for
// storage in 32-bit size fields. It returns ErrTruncation if the size
// does not fit.
func ByteSizeUint32(dims []uint32, elemSize uint32) (uint32, error) {
	size, err := ByteSize(dims, elemSize)
	if err != nil {
		return 0, err
	}
	return safemath.ConvertUnsigned[uint32](size)
}

// ByteLen is like ByteSize but returns the result as an int, suitable for
// allocating or slicing a byte buffer. It returns ErrTruncation if the
// size exceeds math.MaxInt.
func ByteLen(dims []uint32, elemSize uint32) (int, error) {
	size, err := ByteSize(dims, elemSize)
	if err != nil {
		return 0, err
	}
	return safemath.UintToInt(size)
}

// RowStride returns the byte distance between the starts of two
// consecutive rows of width elements of elemSize bytes each, rounded up
// to a multiple of align bytes.
func RowStride(width, elemSize, align uint32) (uint32, error) {
	if elemSize == 0 {
		return 0, fmt.Errorf("%w: element size is 0", safemath.ErrInvalidArgument)
	}
	row, err := safemath.MulUint32(width, elemSize)
	if err != nil {
		return 0, fmt.Errorf("row stride of width %d: %w", width, err)
	}
	stride, err := safemath.RoundUpUint32(row, align)
	if err != nil {
		return 0, fmt.Errorf("row stride of width %d: %w", width, err)
	}
	return stride, nil
}

// Padding returns how many bytes must be appended to a buffer of the
// given size to reach the next multiple of align.
func Padding(size, align uint32) (uint32, error) {
	padded, err := safemath.RoundUpUint32(size, align)
	if err != nil {
		return 0, err
	}
	return padded - size, nil
}
