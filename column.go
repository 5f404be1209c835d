package breadth

import "github.com/edwinsyarief/breadth/wide"

// column is one attribute's ordered block sequence. Block b occupies
// comps[b*width : (b+1)*width].
type column struct {
	comps []wide.F32x8
	width int
}

// newColumn creates a column with one zero block and room for capacity
// blocks before the backing array has to grow.
func newColumn(width, capacity int) column {
	capacity = max(capacity, 1)
	return column{
		comps: make([]wide.F32x8, width, width*capacity),
		width: width,
	}
}

// blocks returns the number of blocks in the column.
func (c *column) blocks() int {
	return len(c.comps) / c.width
}

// block returns the b-th block as a view on the column's storage. The view
// is invalidated by grow.
func (c *column) block(b int) wide.Block {
	lo := b * c.width
	hi := lo + c.width
	return wide.Block(c.comps[lo:hi:hi])
}

// grow appends one zero block.
func (c *column) grow() {
	c.comps = extendSlice(c.comps, c.width)
}

// reset drops every block but the first and zeroes it. Backing capacity is
// kept.
func (c *column) reset() {
	c.comps = c.comps[:c.width]
	clear(c.comps)
}
