// SPDX-License-Identifier: MIT
package transform_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/transform"
)

var sinkTransform transform.Transform

func BenchmarkTransform_Mul(b *testing.B) {
	parent, child := uniform(), nonUniform()
	for i := 0; i < b.N; i++ {
		sinkTransform = parent.Mul(child)
	}
}

func BenchmarkTransform_SetLocalTransform(b *testing.B) {
	parent, global := nonUniform(), uniform()
	for i := 0; i < b.N; i++ {
		sinkTransform.SetLocalTransform(parent, global)
	}
}

func BenchmarkTransform_SetFromMat4(b *testing.B) {
	m := nonUniform().AsMat4()
	for i := 0; i < b.N; i++ {
		_ = sinkTransform.SetFromMat4(m)
	}
}
