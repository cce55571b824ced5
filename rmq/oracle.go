package rmq

import (
	"fmt"
)

// ScanQuery answers [l, r) by a linear scan. Used to check results of the structure.
func ScanQuery[T any](vals []T, less Less[T], l, r int) (idx int, val T, err error) {
	if l < 0 || l >= r || r > len(vals) {
		return -1, val, fmt.Errorf("%w: [%d, %d) with length %d", ErrInvalidRange, l, r, len(vals))
	}
	idx = l
	for i := l + 1; i < r; i++ {
		if less(vals[i], vals[idx]) {
			idx = i
		}
	}
	return idx, vals[idx], nil
}

// Check compares the answer for [l, r) with ScanQuery. Returns a descriptive error on mismatch.
func (q *RMQ[T]) Check(l, r int) error {
	idx, _, err := q.Query(l, r)
	oIdx, _, oErr := ScanQuery(q.vals, q.less, l, r)
	if (err == nil) != (oErr == nil) {
		return fmt.Errorf("rmq: [%d, %d) error mismatch: %v vs oracle %v", l, r, err, oErr)
	}
	if idx != oIdx {
		return fmt.Errorf("rmq: [%d, %d) index %d (%v) vs oracle %d (%v)", l, r, idx, q.vals[idx], oIdx, q.vals[oIdx])
	}
	return nil
}
