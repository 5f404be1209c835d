package breadth

import (
	"github.com/edwinsyarief/breadth/wide"
	"golang.org/x/sync/errgroup"
)

// Calculate advances every entity by one step of dt seconds. dt is broadcast
// to all eight lanes, and each block moves by its velocity block times dt:
// the whole vector for the position layout, only the translation column for
// the transform layout. With WithAcceleration enabled, velocity first gains
// acceleration*dt.
//
// Blocks are independent, so large stores are split into contiguous block
// ranges integrated on separate goroutines. The result is bit-identical to a
// sequential pass. Lanes that were never written stay zero.
func (s *Store[V]) Calculate(dt float32) {
	step := wide.Splat(dt)
	n := s.Blocks()
	workers := s.opts.workers
	if workers <= 1 || n < s.opts.parallelThreshold {
		s.integrate(0, n, step)
		return
	}
	per := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += per {
		hi := min(lo+per, n)
		g.Go(func() error {
			s.integrate(lo, hi, step)
			return nil
		})
	}
	_ = g.Wait() // integrate never fails
}

// integrate advances blocks [lo,hi).
func (s *Store[V]) integrate(lo, hi int, step wide.F32x8) {
	t := s.layout.translation
	for b := lo; b < hi; b++ {
		vel := s.velocity.block(b)
		if s.opts.acceleration {
			vel.AddScaled(s.accel.block(b), step)
		}
		s.spatial.block(b)[t : t+wide.Vec3Width].AddScaled(vel, step)
	}
}
