// SPDX-License-Identifier: MIT
package glconv_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/glconv"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// ExampleMat4ToF32 prepares a translation for a row-major float32 upload.
func ExampleMat4ToF32() {
	var m matrix.Mat4
	m.SetTranslationMatrix(vector.NewVec3(1, 2, 3))
	a := glconv.Mat4ToF32(m)
	fmt.Println(a[0:4])
	fmt.Println(a[4:8])
	// Output:
	// [1 0 0 1]
	// [0 1 0 2]
}
