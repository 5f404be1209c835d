package breadth

import (
	"fmt"
	"testing"

	"github.com/edwinsyarief/breadth/wide"
)

var benchSizes = []int{1000, 10000, 100000, 1000000}

func sizeName(size int) string {
	if size == 1000000 {
		return "1M"
	}
	return fmt.Sprintf("%dK", size/1000)
}

func blocksFor(entities int) int {
	return entities/wide.Lanes + 1
}

// Store Creation Benchmarks
func BenchmarkNewStore(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = NewTransformStore(blocksFor(size))
			}
			b.ReportAllocs()
		})
	}
}

// Push Benchmarks
func BenchmarkPushPreallocated(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			v := wide.NewVec3(1, 0, 0)
			for b.Loop() {
				b.StopTimer()
				s := NewPositionStore(blocksFor(size))
				b.StartTimer()
				for range size {
					s.Push(wide.Vec3{}, v, wide.Vec3{})
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkPushAutoExpand(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := wide.Identity()
			v := wide.NewVec3(1, 0, 0)
			for b.Loop() {
				s := NewTransformStore(1)
				for range size {
					s.Push(m, v, wide.Vec3{})
				}
			}
			b.ReportAllocs()
		})
	}
}

// Release Benchmarks
func BenchmarkReleasePushChurn(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			s := NewTransformStore(blocksFor(size))
			ids := make([]Index, size)
			for j := range size {
				ids[j] = s.Push(wide.Identity(), wide.Vec3{}, wide.Vec3{})
			}
			for b.Loop() {
				for j := 0; j < size; j += 3 {
					s.Release(ids[j])
				}
				for j := 0; j < size; j += 3 {
					ids[j] = s.Push(wide.Identity(), wide.Vec3{}, wide.Vec3{})
				}
			}
			b.ReportAllocs()
		})
	}
}

// Calculate Benchmarks
func BenchmarkCalculatePosition(b *testing.B) {
	for _, size := range benchSizes {
		for _, workers := range []int{1, 0} {
			b.Run(fmt.Sprintf("%s/workers=%d", sizeName(size), workers), func(b *testing.B) {
				s := NewPositionStore(blocksFor(size), WithWorkers(workers))
				for j := range size {
					s.Push(wide.Vec3{}, wide.NewVec3(float32(j), 1, 0), wide.Vec3{})
				}
				for b.Loop() {
					s.Calculate(1.0 / 60)
				}
				b.ReportAllocs()
			})
		}
	}
}

func BenchmarkCalculateTransform(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			s := NewTransformStore(blocksFor(size), WithAcceleration(true))
			for j := range size {
				s.Push(wide.Identity(), wide.NewVec3(float32(j), 1, 0), wide.NewVec3(0, -9.8, 0))
			}
			for b.Loop() {
				s.Calculate(1.0 / 60)
			}
			b.ReportAllocs()
		})
	}
}

// Export Benchmarks
func BenchmarkExportInto(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			s := NewTransformStore(blocksFor(size))
			for range size {
				s.Push(wide.Identity(), wide.Vec3{}, wide.Vec3{})
			}
			buf := make([]wide.Mat4, 0, s.Cap())
			for b.Loop() {
				buf = s.ExportInto(buf)
			}
			b.ReportAllocs()
		})
	}
}
