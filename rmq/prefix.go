package rmq

// buildPrefix: prefix[i] is the extremum of [blockStart, i]. Resets at each block.
func (q *RMQ[T]) buildPrefix(start, end int) {
	q.prefix[start] = start
	for i := start + 1; i < end; i++ {
		if q.less(q.vals[i], q.vals[q.prefix[i-1]]) {
			q.prefix[i] = i
		} else {
			q.prefix[i] = q.prefix[i-1]
		}
	}
}

// buildSuffix: suffix[i] is the extremum of [i, blockEnd). Resets at each block.
// Equal elements keep i, the leftmost.
func (q *RMQ[T]) buildSuffix(start, end int) {
	q.suffix[end-1] = end - 1
	for i := end - 2; i >= start; i-- {
		if q.less(q.vals[q.suffix[i+1]], q.vals[i]) {
			q.suffix[i] = q.suffix[i+1]
		} else {
			q.suffix[i] = i
		}
	}
}
