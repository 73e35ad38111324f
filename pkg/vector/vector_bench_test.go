package vector

import "testing"

func BenchmarkRotate3(b *testing.B) {
	v := Vec3{1, 2, 3}
	for i := 0; i < b.N; i++ {
		Rotate3(&v, 10, 20, 30)
	}
}

func BenchmarkClampMagnitude(b *testing.B) {
	v := Vec3{3, 4, 12}
	for i := 0; i < b.N; i++ {
		_ = ClampMagnitude(v, 1, 5)
	}
}

func BenchmarkGet3(b *testing.B) {
	v := Vec3{1, 2, 3}
	for i := 0; i < b.N; i++ {
		_ = Get3(v, 2, 1, 0)
	}
}

func BenchmarkZYX(b *testing.B) {
	v := Vec3{1, 2, 3}
	for i := 0; i < b.N; i++ {
		_ = ZYX(v)
	}
}
