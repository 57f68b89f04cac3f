// SPDX-License-Identifier: MIT
package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vector"
)

// ExampleVec3_SetLength shows the checked rescale path.
func ExampleVec3_SetLength() {
	v := vector.NewVec3(0, 3, 4)
	if err := v.SetLength(10, 1e-6); err != nil {
		fmt.Println("error:", err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", v.X, v.Y, v.Z)

	z := vector.Zero3()
	fmt.Println(z.SetLength(10, 1e-6))
	// Output:
	// 0.00 6.00 8.00
	// vector: zero length
}

// ExampleRandomDirection draws reproducible directions from a seeded source.
func ExampleRandomDirection() {
	src := vector.NewSource(2024)
	d := vector.RandomDirection(src)
	fmt.Printf("%.3f\n", d.Length())
	// Output:
	// 1.000
}
