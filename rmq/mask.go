package rmq

import (
	"github.com/ScottSallinen/rmq/utils"
)

// buildMasks sweeps one block left to right, keeping a monotonic stack of block-local positions.
// Bit j of masks[i] is set iff position start+j is still on the stack after pushing i.
//
// A position is popped only when a strictly better element arrives, so an equal later element
// never evicts an earlier one. The stack holds positions whose values worsen (or stay equal)
// from bottom to top; the lowest set bit at or above l in masks[r] is the leftmost extremum of [l, r].
func (q *RMQ[T]) buildMasks(start, end int) {
	var stack uint64
	for i := start; i < end; i++ {
		for stack != 0 {
			top := utils.HighestSetBit(stack)
			if !q.less(q.vals[i], q.vals[start+top]) {
				break
			}
			stack = utils.ClearBit(stack, top)
		}
		stack = utils.SetBit(stack, i-start)
		q.masks[i] = stack
	}
}
