package rmq

import (
	"runtime"
	"sync"

	"github.com/ScottSallinen/rmq/utils"
)

// Options for construction.
type Options struct {
	Threads int // Goroutines for the per-block phases. 0 uses runtime.NumCPU(); 1 builds on the calling goroutine.
}

// Below this many blocks per thread, fanning out costs more than it saves.
const minBlocksPerThread = 16

func numBlocks(n int) int {
	return (n + BlockSize - 1) / BlockSize
}

func (q *RMQ[T]) blockBounds(b int) (start, end int) {
	start = b * BlockSize
	return start, min(start+BlockSize, len(q.vals))
}

func (q *RMQ[T]) build(opts Options) {
	n := len(q.vals)
	m := numBlocks(n)
	q.blocks = make([]int, m)
	q.prefix = make([]int, n)
	q.suffix = make([]int, n)
	q.masks = make([]uint64, n)
	if n == 0 {
		return
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	threads = max(1, min(threads, m/minBlocksPerThread))

	if threads == 1 {
		q.buildBlocks(0, m)
	} else {
		wg := new(sync.WaitGroup)
		wg.Add(threads)
		per := (m + threads - 1) / threads
		for t := 0; t < threads; t++ {
			go func(lo, hi int) {
				q.buildBlocks(lo, hi)
				wg.Done()
			}(min(t*per, m), min((t+1)*per, m))
		}
		wg.Wait() // The table reads every block representative.
	}

	q.buildTable()

	logger := utils.ComponentLogger("rmq")
	logger.Debug().Int("n", n).Int("blocks", m).Int("levels", len(q.table)).Int("threads", threads).
		Msg("built")
}

// buildBlocks runs the independent per-block phases for blocks [lo, hi). Writes are disjoint per block.
func (q *RMQ[T]) buildBlocks(lo, hi int) {
	for b := lo; b < hi; b++ {
		start, end := q.blockBounds(b)
		q.blocks[b] = q.blockExtremum(start, end)
		q.buildMasks(start, end)
		q.buildPrefix(start, end)
		q.buildSuffix(start, end)
	}
}

// blockExtremum scans [start, end) keeping the first seen of equal candidates.
func (q *RMQ[T]) blockExtremum(start, end int) int {
	best := start
	for i := start + 1; i < end; i++ {
		if q.less(q.vals[i], q.vals[best]) {
			best = i
		}
	}
	return best
}
