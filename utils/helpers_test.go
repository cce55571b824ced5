package utils

import (
	"testing"
)

func Test_SliceIdx(t *testing.T) {
	vals := []int{5, 3, 3, 7, 7, 1, 1}
	expect(t, 5, MinSliceIdx(vals), "min")
	expect(t, 3, MaxSliceIdx(vals), "max")
	expect(t, 1, MinSlice(vals), "min value")
	expect(t, 7, MaxSlice(vals), "max value")
	expect(t, 0, MinSliceIdx([]float64{2.5}), "single")
}

func Test_Percentile(t *testing.T) {
	vals := []int{9, 1, 8, 2, 7, 3, 6, 4, 5, 10}
	expect(t, 1, Percentile(vals, 0))
	expect(t, 6, Percentile(vals, 50))
	expect(t, 10, Percentile(vals, 99))
	expect(t, 10, Percentile(vals, 100))
	expect(t, 0, Percentile([]int{}, 50))
	// Input is not reordered.
	expect(t, 9, vals[0])
}
