package wide

import "fmt"

// Block is a packed group of eight lanes over len(b) scalar components.
// Component c of lane l lives at b[c][l].
//
// A Block is usually a window onto a larger backing slice, so the lane
// methods mutate shared storage in place.
type Block []F32x8

// NewBlock allocates a zero block with the given number of components.
func NewBlock(components int) Block {
	return make(Block, components)
}

// Components returns the number of scalar components per lane.
func (b Block) Components() int {
	return len(b)
}

// ClearLane zeroes lane in every component and leaves the other seven lanes
// untouched.
func (b Block) ClearLane(lane int) {
	checkLane(lane)
	m := clearMask(lane)
	for c := range b {
		b[c] = b[c].Mul(m)
	}
}

// WriteLane adds src into lane. The lane must already be zero for the result
// to equal src; use SetLane to overwrite an occupied lane.
func (b Block) WriteLane(lane int, src []float32) {
	checkLane(lane)
	b.checkWidth(len(src))
	for c := range b {
		b[c] = b[c].Add(writeMask(lane, src[c]))
	}
}

// SetLane overwrites lane with src: clear, then write.
func (b Block) SetLane(lane int, src []float32) {
	b.ClearLane(lane)
	b.WriteLane(lane, src)
}

// Lane copies lane into dst, which must have one slot per component.
func (b Block) Lane(lane int, dst []float32) {
	checkLane(lane)
	b.checkWidth(len(dst))
	for c := range b {
		dst[c] = b[c][lane]
	}
}

// Add adds o into b component-wise.
func (b Block) Add(o Block) {
	b.checkWidth(len(o))
	for c := range b {
		b[c] = b[c].Add(o[c])
	}
}

// Mul multiplies b by o component-wise.
func (b Block) Mul(o Block) {
	b.checkWidth(len(o))
	for c := range b {
		b[c] = b[c].Mul(o[c])
	}
}

// AddScaled performs b += src*s component-wise, with s broadcast per lane.
func (b Block) AddScaled(src Block, s F32x8) {
	b.checkWidth(len(src))
	for c := range b {
		b[c] = src[c].MulAdd(s, b[c])
	}
}

func (b Block) checkWidth(n int) {
	if n != len(b) {
		panic(fmt.Sprintf("wide: component count mismatch: block has %d, got %d", len(b), n))
	}
}

func checkLane(lane int) {
	if lane < 0 || lane >= Lanes {
		panic(fmt.Sprintf("wide: lane %d out of range [0,%d)", lane, Lanes))
	}
}
