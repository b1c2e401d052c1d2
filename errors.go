// Copyright 2026 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import "errors"

// Sentinel errors identifying the kind of arithmetic failure. Errors
// returned by this package wrap one of these values, together with the
// operands involved, and can be classified with errors.Is.
var (
	// ErrOverflow reports that the exact result of an operation is not
	// representable in the result type.
	ErrOverflow = errors.New("integer overflow")

	// ErrDivisionByZero reports a division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidArgument reports an argument for which the requested
	// operation is not defined, such as rounding up to a multiple of zero.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTruncation reports that a value cannot be converted to the
	// destination type without changing it.
	ErrTruncation = errors.New("conversion would truncate")
)
