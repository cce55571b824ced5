// Package rmq provides a static range extremum query structure.
//
// A sequence of n elements is split into 64 element blocks (one machine word). Queries inside a
// single block are answered from a per-position monotonic stack encoded as a bitmask; queries that
// cross a block boundary combine a block suffix, a block prefix, and a sparse table over whole
// blocks. Construction is O(n) (plus O(n/64 log(n/64)) for the table) and every query is O(1).
//
// The structure is immutable after construction and safe for concurrent queries.
// Ties resolve to the leftmost index.
package rmq

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/ScottSallinen/rmq/enforce"
	"github.com/ScottSallinen/rmq/utils"
)

// BlockSize is the width of a mask word, and so the number of elements per block.
const BlockSize = 64

var (
	// ErrInvalidRange is returned for a query [l, r) that does not satisfy 0 <= l < r <= n.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidInput is returned when a structure cannot be built from the given arguments.
	ErrInvalidInput = errors.New("invalid input")
)

// Less is a strict weak ordering; Less(a, b) reports whether a is strictly better than b.
// For a minimum query this is a < b, for a maximum query a > b.
type Less[T any] func(a, b T) bool

// RMQ answers "which index holds the extremum of [l, r)" over a fixed sequence.
type RMQ[T any] struct {
	vals   []T
	less   Less[T]
	blocks []int   // Index of the extremum of each block.
	table  [][]int // table[k][b]: index of the extremum over blocks [b, b+2^k).
	prefix []int   // Index of the extremum from the start of the block through i.
	suffix []int   // Index of the extremum from i through the end of the block.
	masks  []uint64
}

// New builds the structure over a copy of vals, using all CPUs for the per-block phases.
// A nil less is a programming error and panics.
func New[T any](vals []T, less Less[T]) *RMQ[T] {
	return NewWithOptions(vals, less, Options{})
}

// NewWithOptions is New with explicit build options.
func NewWithOptions[T any](vals []T, less Less[T], opts Options) *RMQ[T] {
	enforce.ENFORCE(less != nil, "rmq: nil ordering")
	q := &RMQ[T]{
		vals: make([]T, len(vals)),
		less: less,
	}
	copy(q.vals, vals)
	q.build(opts)
	return q
}

// NewChecked is NewWithOptions, but reports ErrInvalidInput instead of panicking.
func NewChecked[T any](vals []T, less Less[T], opts Options) (*RMQ[T], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: nil ordering", ErrInvalidInput)
	}
	if opts.Threads < 0 {
		return nil, fmt.Errorf("%w: negative thread count %d", ErrInvalidInput, opts.Threads)
	}
	return NewWithOptions(vals, less, opts), nil
}

// NewMin answers range minimum queries.
func NewMin[T constraints.Ordered](vals []T) *RMQ[T] {
	return New(vals, func(a, b T) bool { return a < b })
}

// NewMax answers range maximum queries.
func NewMax[T constraints.Ordered](vals []T) *RMQ[T] {
	return New(vals, func(a, b T) bool { return a > b })
}

// Len is the length of the underlying sequence.
func (q *RMQ[T]) Len() int {
	return len(q.vals)
}

// At returns the element at position i.
func (q *RMQ[T]) At(i int) T {
	return q.vals[i]
}

// Better returns whichever of positions i and j holds the better element; the smaller index on ties.
func (q *RMQ[T]) Better(i, j int) int {
	if q.less(q.vals[j], q.vals[i]) {
		return j
	} else if q.less(q.vals[i], q.vals[j]) {
		return i
	}
	return min(i, j)
}

func (q *RMQ[T]) valid(l, r int) bool {
	return 0 <= l && l < r && r <= len(q.vals)
}

// Query returns the index and value of the extremum of [l, r).
// Fails with ErrInvalidRange unless 0 <= l < r <= Len().
func (q *RMQ[T]) Query(l, r int) (idx int, val T, err error) {
	if !q.valid(l, r) {
		return -1, val, fmt.Errorf("%w: [%d, %d) with length %d", ErrInvalidRange, l, r, len(q.vals))
	}
	idx = q.index(l, r)
	return idx, q.vals[idx], nil
}

// Index returns the index of the extremum of [l, r). Panics on an invalid range.
func (q *RMQ[T]) Index(l, r int) int {
	if !q.valid(l, r) {
		enforce.FAIL("rmq: ", ErrInvalidRange, " [", l, ", ", r, ") with length ", len(q.vals))
	}
	return q.index(l, r)
}

// Value returns the extremum of [l, r). Panics on an invalid range.
func (q *RMQ[T]) Value(l, r int) T {
	return q.vals[q.Index(l, r)]
}

// index dispatches a validated range.
func (q *RMQ[T]) index(l, r int) int {
	bl, br := l/BlockSize, (r-1)/BlockSize
	if bl == br {
		return q.inBlock(l, r-1)
	}
	ans := q.Better(q.suffix[l], q.prefix[r-1])
	if bl+1 < br {
		ans = q.Better(ans, q.blockRange(bl+1, br))
	}
	return ans
}

// inBlock answers [l, hi] (inclusive) where both ends share a block.
func (q *RMQ[T]) inBlock(l, hi int) int {
	mask := q.masks[hi] >> uint(l%BlockSize)
	return l + utils.LowestSetBit(mask)
}
