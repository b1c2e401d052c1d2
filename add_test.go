// Copyright 2026 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import (
	"errors"
	"math"
	"testing"
)

func TestAddInt32(t *testing.T) {
	const (
		min = math.MinInt32
		max = math.MaxInt32
	)

	t.Run("no overflow", func(t *testing.T) {
		testCases := [][2]int32{
			{0, 0},
			{1, 2},
			{max, 0},
			{max - 1, 1},
			{min, 0},
			{min + 1, -1},
			{min, max},
			{max / 2, max/2 + 1},
		}
		for _, tc := range testCases {
			for _, pair := range [][2]int32{tc, {tc[1], tc[0]}} {
				want := pair[0] + pair[1]

				sum, err := AddInt32(pair[0], pair[1])
				if sum != want || err != nil {
					t.Errorf("%d + %d: want (%d, nil), got (%d, %v)", pair[0], pair[1], want, sum, err)
				}
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		testCases := [][2]int32{
			{max, 1},
			{max - 1, 2},
			{max, max},
			{min, -1},
			{min + 1, -2},
			{min, min},
		}
		for _, tc := range testCases {
			for _, pair := range [][2]int32{tc, {tc[1], tc[0]}} {
				sum, err := AddInt32(pair[0], pair[1])
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("%d + %d: want ErrOverflow, got (%d, %v)", pair[0], pair[1], sum, err)
				}
				if sum != 0 {
					t.Errorf("%d + %d: want 0 on overflow, got %d", pair[0], pair[1], sum)
				}
			}
		}
	})
}

func TestCheckedAddInt32(t *testing.T) {
	if sum, ok := CheckedAddInt32(40, 2); !ok || sum != 42 {
		t.Errorf("40 + 2: want (42, true), got (%d, %t)", sum, ok)
	}
	if sum, ok := CheckedAddInt32(math.MaxInt32, 1); ok || sum != 0 {
		t.Errorf("%d + 1: want (0, false), got (%d, %t)", int32(math.MaxInt32), sum, ok)
	}
	if sum, ok := CheckedAddInt32(math.MinInt32, -1); ok || sum != 0 {
		t.Errorf("%d + -1: want (0, false), got (%d, %t)", int32(math.MinInt32), sum, ok)
	}
}

func TestAddUint32(t *testing.T) {
	const max = math.MaxUint32

	t.Run("no overflow", func(t *testing.T) {
		testCases := [][2]uint32{
			{0, 0},
			{0, 1},
			{1, 2},
			{max, 0},
			{max - 1, 1},
			{max / 2, max/2 + 1},
		}
		for _, tc := range testCases {
			for _, pair := range [][2]uint32{tc, {tc[1], tc[0]}} {
				want := pair[0] + pair[1]

				sum, err := AddUint32(pair[0], pair[1])
				if sum != want || err != nil {
					t.Errorf("%d + %d: want (%d, nil), got (%d, %v)", pair[0], pair[1], want, sum, err)
				}
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		testCases := [][2]uint32{
			{max, 1},
			{max - 1, 2},
			{max, max},
			{max/2 + 1, max/2 + 1},
		}
		for _, tc := range testCases {
			for _, pair := range [][2]uint32{tc, {tc[1], tc[0]}} {
				sum, err := AddUint32(pair[0], pair[1])
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("%d + %d: want ErrOverflow, got (%d, %v)", pair[0], pair[1], sum, err)
				}
				if sum != 0 {
					t.Errorf("%d + %d: want 0 on overflow, got %d", pair[0], pair[1], sum)
				}
			}
		}
	})
}

func TestCheckedAddUint32(t *testing.T) {
	if sum, ok := CheckedAddUint32(40, 2); !ok || sum != 42 {
		t.Errorf("40 + 2: want (42, true), got (%d, %t)", sum, ok)
	}
	if sum, ok := CheckedAddUint32(math.MaxUint32, 1); ok || sum != 0 {
		t.Errorf("%d + 1: want (0, false), got (%d, %t)", uint32(math.MaxUint32), sum, ok)
	}
}

func TestAddInt64(t *testing.T) {
	const (
		min = math.MinInt64
		max = math.MaxInt64
	)

	t.Run("no overflow", func(t *testing.T) {
		testCases := [][2]int64{
			{0, 0},
			{1, 2},
			{max, 0},
			{max - 1, 1},
			{min, 0},
			{min + 1, -1},
			{min, max},
		}
		for _, tc := range testCases {
			for _, pair := range [][2]int64{tc, {tc[1], tc[0]}} {
				want := pair[0] + pair[1]

				sum, err := AddInt64(pair[0], pair[1])
				if sum != want || err != nil {
					t.Errorf("%d + %d: want (%d, nil), got (%d, %v)", pair[0], pair[1], want, sum, err)
				}
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		testCases := [][2]int64{
			{max, 1},
			{max, max},
			{min, -1},
			{min, min},
		}
		for _, tc := range testCases {
			for _, pair := range [][2]int64{tc, {tc[1], tc[0]}} {
				sum, err := AddInt64(pair[0], pair[1])
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("%d + %d: want ErrOverflow, got (%d, %v)", pair[0], pair[1], sum, err)
				}
				if sum != 0 {
					t.Errorf("%d + %d: want 0 on overflow, got %d", pair[0], pair[1], sum)
				}
			}
		}
	})
}

func TestCheckedAddInt64(t *testing.T) {
	if sum, ok := CheckedAddInt64(1<<40, 1); !ok || sum != 1<<40+1 {
		t.Errorf("2^40 + 1: want (%d, true), got (%d, %t)", int64(1<<40+1), sum, ok)
	}
	if sum, ok := CheckedAddInt64(math.MaxInt64, 1); ok || sum != 0 {
		t.Errorf("%d + 1: want (0, false), got (%d, %t)", int64(math.MaxInt64), sum, ok)
	}
}
