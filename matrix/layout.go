// SPDX-License-Identifier: MIT

package matrix

// Layout names the element order of a flat matrix array.
type Layout int

const (
	// ColumnMajor walks a column before moving to the next one. This is the
	// in-memory order of Mat3.M and Mat4.M.
	ColumnMajor Layout = iota

	// RowMajor walks a row before moving to the next one.
	RowMajor
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	default:
		return "unknown"
	}
}

// fromArray copies an n×n matrix from data into dst (column-major).
// The caller has validated data.
func fromArray(dst []float64, data []float64, n int, l Layout) {
	if l == ColumnMajor {
		copy(dst, data)
		return
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			dst[c*n+r] = data[r*n+c]
		}
	}
}

// toArray returns a fresh slice holding the n×n column-major src in layout l.
func toArray(src []float64, n int, l Layout) []float64 {
	out := make([]float64, n*n)
	if l == RowMajor {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				out[r*n+c] = src[c*n+r]
			}
		}
		return out
	}
	copy(out, src)
	return out
}
