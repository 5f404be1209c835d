package breadth

import (
	"log/slog"

	"github.com/edwinsyarief/breadth/wide"
	"github.com/viant/vec/search"
)

// Store packs per-entity kinematic state into eight-lane blocks: one block
// sequence for the spatial attribute (position or transform), one for
// velocity and one for acceleration. Every sequence always has the same
// number of blocks, and an entity's Index addresses the same block and lane
// in each of them.
//
// Push, Release, the setters and Reset must not run concurrently with each
// other or with Calculate. Calculate itself fans out over disjoint blocks.
type Store[V Spatial] struct {
	logger   *slog.Logger
	spatial  column
	velocity column
	accel    column
	alloc    allocator
	opts     options
	layout   layout
}

// PositionStore packs a plain position vector per entity.
type PositionStore = Store[wide.Vec3]

// TransformStore packs a column-major 4x4 transform per entity.
type TransformStore = Store[wide.Mat4]

// Stats is a point-in-time summary of a store.
type Stats struct {
	Layout string
	ISA    string
	Blocks int
	Issued int // indices ever handed out by the cursor
	Free   int // released indices waiting for reuse
	Live   int
}

// New creates a store with room for capacity blocks in each attribute
// sequence. The store always starts with exactly one zero block, whatever
// the capacity.
//
// Parameters:
//   - capacity: The number of blocks to preallocate per attribute. It only
//     affects reallocation, never the number of live blocks.
//   - opts: Optional settings, see WithWorkers, WithAcceleration and friends.
//
// Returns:
//   - The newly created Store.
func New[V Spatial](capacity int, opts ...Option) *Store[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	lay := layoutOf[V]()
	s := &Store[V]{
		logger:   o.logger,
		spatial:  newColumn(lay.width, capacity),
		velocity: newColumn(wide.Vec3Width, capacity),
		accel:    newColumn(wide.Vec3Width, capacity),
		alloc:    newAllocator(),
		opts:     o,
		layout:   lay,
	}
	s.logger.Debug("store created",
		"layout", lay.name,
		"capacity", capacity,
		"workers", o.workers,
		"acceleration", o.acceleration,
		"isa", wide.Capability().String(),
	)
	return s
}

// NewPositionStore is New for the position layout.
func NewPositionStore(capacity int, opts ...Option) *PositionStore {
	return New[wide.Vec3](capacity, opts...)
}

// NewTransformStore is New for the transform layout.
func NewTransformStore(capacity int, opts ...Option) *TransformStore {
	return New[wide.Mat4](capacity, opts...)
}

// Push stores a new entity and returns its Index. The most recently released
// index is reused first; its lane is cleared before the write so nothing of
// the previous occupant survives. Otherwise the next unused address is taken
// and, when it was the last lane of its block, a zero block is appended to
// every attribute sequence.
//
// Parameters:
//   - spatial: The entity's position or transform.
//   - velocity: The entity's velocity.
//   - acceleration: The entity's acceleration.
//
// Returns:
//   - The Index addressing the entity in every attribute sequence.
func (s *Store[V]) Push(spatial V, velocity, acceleration wide.Vec3) Index {
	if idx, ok := s.alloc.pop(); ok {
		s.spatial.block(idx.Block).SetLane(idx.Lane, scalars(&spatial))
		s.velocity.block(idx.Block).SetLane(idx.Lane, velocity[:])
		s.accel.block(idx.Block).SetLane(idx.Lane, acceleration[:])
		return idx
	}
	// A never-issued lane is zero, so the clear is skipped.
	idx, grew := s.alloc.advance()
	s.spatial.block(idx.Block).WriteLane(idx.Lane, scalars(&spatial))
	s.velocity.block(idx.Block).WriteLane(idx.Lane, velocity[:])
	s.accel.block(idx.Block).WriteLane(idx.Lane, acceleration[:])
	if grew {
		s.grow()
	}
	return idx
}

// grow appends one zero block to every attribute sequence.
func (s *Store[V]) grow() {
	s.spatial.grow()
	s.velocity.grow()
	s.accel.grow()
	s.logger.Debug("block appended", "layout", s.layout.name, "blocks", s.spatial.blocks())
}

// Release frees idx for reuse by a later Push. The entity's lanes are
// cleared in every attribute, so it stops moving and exports as zero.
//
// Release panics if idx was never issued by this store or is already
// released; either would corrupt a lane that belongs to someone else.
func (s *Store[V]) Release(idx Index) {
	s.alloc.release(idx)
	s.spatial.block(idx.Block).ClearLane(idx.Lane)
	s.velocity.block(idx.Block).ClearLane(idx.Lane)
	s.accel.block(idx.Block).ClearLane(idx.Lane)
}

// Set overwrites the spatial attribute of a live entity.
func (s *Store[V]) Set(idx Index, spatial V) {
	s.alloc.mustBeLive(idx)
	s.spatial.block(idx.Block).SetLane(idx.Lane, scalars(&spatial))
}

// SetVelocity overwrites the velocity of a live entity.
func (s *Store[V]) SetVelocity(idx Index, velocity wide.Vec3) {
	s.alloc.mustBeLive(idx)
	s.velocity.block(idx.Block).SetLane(idx.Lane, velocity[:])
}

// SetAcceleration overwrites the acceleration of a live entity.
func (s *Store[V]) SetAcceleration(idx Index, acceleration wide.Vec3) {
	s.alloc.mustBeLive(idx)
	s.accel.block(idx.Block).SetLane(idx.Lane, acceleration[:])
}

// Spatial returns the position or transform of a live entity.
func (s *Store[V]) Spatial(idx Index) V {
	s.alloc.mustBeLive(idx)
	var v V
	s.spatial.block(idx.Block).Lane(idx.Lane, scalars(&v))
	return v
}

// Velocity returns the velocity of a live entity.
func (s *Store[V]) Velocity(idx Index) wide.Vec3 {
	s.alloc.mustBeLive(idx)
	return lane3(&s.velocity, idx)
}

// Acceleration returns the acceleration of a live entity.
func (s *Store[V]) Acceleration(idx Index) wide.Vec3 {
	s.alloc.mustBeLive(idx)
	return lane3(&s.accel, idx)
}

// Speed returns the magnitude of a live entity's velocity.
func (s *Store[V]) Speed(idx Index) float32 {
	v := s.Velocity(idx)
	return search.Float32s(v[:]).Magnitude()
}

func lane3(c *column, idx Index) wide.Vec3 {
	var v wide.Vec3
	c.block(idx.Block).Lane(idx.Lane, v[:])
	return v
}

// IsLive reports whether idx addresses a live entity of this store.
func (s *Store[V]) IsLive(idx Index) bool {
	return s.alloc.live(idx)
}

// Len returns the number of live entities.
func (s *Store[V]) Len() int {
	return s.alloc.count()
}

// Blocks returns the number of blocks in each attribute sequence.
func (s *Store[V]) Blocks() int {
	return s.spatial.blocks()
}

// Cap returns the number of lanes across all blocks, which is also the
// length of ExportRaw.
func (s *Store[V]) Cap() int {
	return s.Blocks() * wide.Lanes
}

// Stats returns a summary of the store's occupancy.
func (s *Store[V]) Stats() Stats {
	return Stats{
		Layout: s.layout.name,
		ISA:    wide.Capability().String(),
		Blocks: s.Blocks(),
		Issued: s.alloc.next.Flat(),
		Free:   len(s.alloc.free),
		Live:   s.alloc.count(),
	}
}

// Reset removes every entity and returns the store to a single zero block
// without releasing backing memory. Indices issued before Reset must not be
// used afterwards.
func (s *Store[V]) Reset() {
	s.spatial.reset()
	s.velocity.reset()
	s.accel.reset()
	s.alloc.reset()
	s.logger.Debug("store reset", "layout", s.layout.name)
}
