package math2d

import (
	"testing"
)

func BenchmarkFromAngle(b *testing.B) {
	for b.Loop() {
		_ = FromAngle(0.75)
	}
}

func BenchmarkVec2AddScale(b *testing.B) {
	pos := V2(150, 150)
	dir := FromAngle(0.75)

	for b.Loop() {
		_ = pos.Add(dir.Scale(42))
	}
}

func BenchmarkNormalizeAngle(b *testing.B) {
	for b.Loop() {
		_ = NormalizeAngle(-7.5)
	}
}
