package rmq

import (
	"github.com/ScottSallinen/rmq/utils"
)

// buildTable builds the sparse table over block representatives.
// Level k holds one entry for every run of 2^k whole blocks that fits, so level k has m-2^k+1 entries.
func (q *RMQ[T]) buildTable() {
	m := len(q.blocks)
	lg := utils.Log2Floor(m)
	q.table = make([][]int, lg+1)
	q.table[0] = q.blocks
	for k := 1; k <= lg; k++ {
		half := 1 << (k - 1)
		prev := q.table[k-1]
		level := make([]int, m-(1<<k)+1)
		for b := range level {
			level[b] = q.Better(prev[b], prev[b+half])
		}
		q.table[k] = level
	}
}

// blockRange returns the index of the extremum over whole blocks [bLo, bHi), bLo < bHi.
// Two runs of 2^k blocks may overlap; the extremum is idempotent so the overlap is harmless.
func (q *RMQ[T]) blockRange(bLo, bHi int) int {
	k := utils.Log2Floor(bHi - bLo)
	return q.Better(q.table[k][bLo], q.table[k][bHi-(1<<k)])
}
