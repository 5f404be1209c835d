package breadth

import "github.com/edwinsyarief/breadth/wide"

// ExportRaw unpacks the spatial attribute into one plain value per lane, in
// block-then-lane order: element i belongs to IndexAt(i). Lanes that were
// never written, or were released, come out as the zero value.
//
// For a TransformStore the result is ready to be copied into an instance
// buffer.
func (s *Store[V]) ExportRaw() []V {
	return s.ExportInto(nil)
}

// ExportInto is ExportRaw writing into dst, which is reused when it has
// enough capacity. The returned slice has length Cap().
func (s *Store[V]) ExportInto(dst []V) []V {
	n := s.Cap()
	if cap(dst) < n {
		dst = make([]V, n)
	}
	dst = dst[:n]
	for b := range s.Blocks() {
		blk := s.spatial.block(b)
		for l := range wide.Lanes {
			blk.Lane(l, scalars(&dst[b*wide.Lanes+l]))
		}
	}
	return dst
}
