// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the input checks of the array interchange.
//  - Return plain sentinels so call sites can wrap uniformly.
//
// All checks are pure and allocate nothing.

package matrix

import "fmt"

// validatorErrorf tags an underlying sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLayout ensures l is ColumnMajor or RowMajor.
//
// Returns wrapped ErrBadLayout otherwise.
// Complexity: O(1).
func ValidateLayout(l Layout) error {
	switch l {
	case ColumnMajor, RowMajor:
		return nil
	default:
		return validatorErrorf("ValidateLayout", ErrBadLayout)
	}
}

// ValidateArray ensures data holds exactly n elements and the layout is known.
//
// Order: layout first, then length.
// Returns wrapped ErrBadLayout or ErrBadLength.
// Complexity: O(1).
func ValidateArray(data []float64, n int, l Layout) error {
	if err := ValidateLayout(l); err != nil {
		return err
	}
	if len(data) != n {
		return validatorErrorf(fmt.Sprintf("ValidateArray: want %d got %d", n, len(data)), ErrBadLength)
	}

	return nil
}
