package breadth

import (
	"fmt"

	"github.com/edwinsyarief/breadth/wide"
)

// Index identifies one entity's storage position: a block and a lane inside
// it. The same Index addresses the entity in every attribute sequence.
//
// Indices are handed out by Store.Push and are only meaningful for the store
// that issued them.
type Index struct {
	// Block is the position of the eight-lane block in each sequence.
	Block int
	// Lane is the lane inside the block, in [0,8).
	Lane int
}

// Flat returns Block*8+Lane, the position of the entity in ExportRaw output.
func (i Index) Flat() int {
	return i.Block*wide.Lanes + i.Lane
}

// IndexAt is the inverse of Index.Flat.
func IndexAt(flat int) Index {
	return Index{Block: flat / wide.Lanes, Lane: flat % wide.Lanes}
}

// String implements fmt.Stringer.
func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Block, i.Lane)
}

// next returns the address after i and whether it starts a new block.
func (i Index) next() (Index, bool) {
	if i.Lane == wide.Lanes-1 {
		return Index{Block: i.Block + 1}, true
	}
	return Index{Block: i.Block, Lane: i.Lane + 1}, false
}
