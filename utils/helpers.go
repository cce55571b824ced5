package utils

import (
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

type Pair[F any, S any] struct {
	First  F
	Second S
}

// MinSliceIdx returns the leftmost index of the minimum.
func MinSliceIdx[T constraints.Ordered](slice []T) (idx int) {
	for i := range slice {
		if slice[i] < slice[idx] {
			idx = i
		}
	}
	return idx
}

// MaxSliceIdx returns the leftmost index of the maximum.
func MaxSliceIdx[T constraints.Ordered](slice []T) (idx int) {
	for i := range slice {
		if slice[idx] < slice[i] {
			idx = i
		}
	}
	return idx
}

func MaxSlice[T constraints.Ordered](slice []T) T {
	return slice[MaxSliceIdx(slice)]
}

func MinSlice[T constraints.Ordered](slice []T) T {
	return slice[MinSliceIdx(slice)]
}

func Percentile[T constraints.Integer | constraints.Float](n []T, percentile int) T {
	if len(n) == 0 {
		log.Warn().Msg("WARNING: Percentile called on empty slice")
		return 0
	}
	if len(n) == 1 {
		return n[0]
	}

	copyN := make([]T, len(n))
	copy(copyN, n)
	sort.Slice(copyN, func(i, j int) bool { return copyN[i] < copyN[j] })

	idx := int(((float64(percentile) / 100.0) * float64(len(copyN))))
	if idx >= len(copyN) {
		idx = len(copyN) - 1
	}
	return copyN[idx]
}
