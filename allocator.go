package breadth

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/edwinsyarief/breadth/wide"
)

// allocator hands out slot indices. Released indices are kept on a LIFO
// stack and always reused before the cursor advances. The freed bitmap
// mirrors the stack so membership checks stay O(1).
//
// The allocator knows nothing about attribute layouts; the store appends a
// block to every column whenever advance reports a block boundary.
type allocator struct {
	freed *roaring.Bitmap
	free  []Index // stack of released indices
	next  Index   // next never-issued address
}

func newAllocator() allocator {
	return allocator{freed: roaring.New()}
}

// pop takes the most recently released index, if any.
func (a *allocator) pop() (Index, bool) {
	if len(a.free) == 0 {
		return Index{}, false
	}
	last := len(a.free) - 1
	idx := a.free[last]
	a.free = a.free[:last]
	a.freed.Remove(uint32(idx.Flat()))
	return idx, true
}

// advance issues the cursor address and moves the cursor forward. grew is
// true when the cursor crossed into a block that does not exist yet.
func (a *allocator) advance() (idx Index, grew bool) {
	idx = a.next
	a.next, grew = idx.next()
	return idx, grew
}

// release puts idx back on the free stack. It panics on an index that was
// never issued or is already free.
func (a *allocator) release(idx Index) {
	a.mustBeLive(idx)
	a.freed.Add(uint32(idx.Flat()))
	a.free = append(a.free, idx)
}

// issued reports whether idx was ever handed out by advance.
func (a *allocator) issued(idx Index) bool {
	if idx.Lane < 0 || idx.Lane >= wide.Lanes || idx.Block < 0 {
		return false
	}
	return idx.Flat() < a.next.Flat()
}

// live reports whether idx is issued and not on the free stack.
func (a *allocator) live(idx Index) bool {
	return a.issued(idx) && !a.freed.Contains(uint32(idx.Flat()))
}

// mustBeLive panics unless idx currently addresses a live entity.
func (a *allocator) mustBeLive(idx Index) {
	if !a.issued(idx) {
		panic(fmt.Sprintf("breadth: index %v was never issued", idx))
	}
	if a.freed.Contains(uint32(idx.Flat())) {
		panic(fmt.Sprintf("breadth: index %v is released", idx))
	}
}

// count returns the number of live indices.
func (a *allocator) count() int {
	return a.next.Flat() - len(a.free)
}

func (a *allocator) reset() {
	a.next = Index{}
	a.free = a.free[:0]
	a.freed.Clear()
}
