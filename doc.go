// Package breadth implements a packed kinematic attribute store for
// real-time simulation loops.
//
// Entities are grouped eight to a block so that integration runs over eight
// entities per vector operation:
//
//   - Slot addressing: an Index is a (block, lane) pair valid across every
//     attribute sequence.
//   - Packed storage: spatial (position or transform), velocity and
//     acceleration each live in their own sequence of eight-lane blocks.
//   - Slot recycling: released indices go on a LIFO free list and are reused
//     before new addresses are drawn, without moving live data.
//   - Lane codec: single-lane writes are built from whole-block multiply and
//     add with masks, see the wide package.
//   - Batch integration: Calculate advances every block independently and
//     fans out across goroutines.
//   - Raw export: ExportRaw flattens the spatial attribute in index order
//     for a rendering consumer.
//
// Example:
//
//	s := breadth.NewPositionStore(16)
//	idx := s.Push(wide.NewVec3(0, 0, 0), wide.NewVec3(1, 0, 0), wide.Vec3{})
//	s.Calculate(1.0 / 60)
//	p := s.Spatial(idx)
package breadth
