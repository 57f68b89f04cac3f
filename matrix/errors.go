// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels directly; tests match them via errors.Is.
// Outer boundaries may wrap with fmt.Errorf("ctx: %w", ErrX).

package matrix

import "errors"

var (
	// ErrSingular is returned when the determinant is within eps of zero and
	// the matrix has no usable inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDegenerateColumn is returned when a basis column has (near) zero
	// length and therefore cannot be rescaled.
	ErrDegenerateColumn = errors.New("matrix: degenerate basis column")

	// ErrBadLength indicates a flat array with the wrong number of elements.
	ErrBadLength = errors.New("matrix: wrong array length")

	// ErrBadLayout indicates an unknown Layout value.
	ErrBadLayout = errors.New("matrix: unknown layout")
)
