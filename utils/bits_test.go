package utils

import (
	"math/rand"
	"testing"
)

func Test_LowestSetBit(t *testing.T) {
	words := []uint64{1, 2, 3, 0b1000, 0b1010_0000, 1 << 63, 0xFFFFFFFFFFFFFFFF, 0}
	wordsAns := []int{0, 1, 0, 3, 5, 63, 0, 64}
	for i := range words {
		expect(t, wordsAns[i], LowestSetBit(words[i]), F("%d", i))
	}
}

func Test_HighestSetBit(t *testing.T) {
	words := []uint64{1, 2, 3, 0b1000, 0b1010_0000, 1 << 63, 0xFFFFFFFFFFFFFFFF, 0}
	wordsAns := []int{0, 1, 1, 3, 7, 63, 63, -1}
	for i := range words {
		expect(t, wordsAns[i], HighestSetBit(words[i]), F("%d", i))
	}
}

func Test_SetClearBit(t *testing.T) {
	var w uint64
	for i := 0; i < 64; i += 3 {
		w = SetBit(w, i)
	}
	for i := 0; i < 64; i++ {
		expect(t, i%3 == 0, w&(1<<uint(i)) != 0)
	}
	for i := 0; i < 64; i += 3 {
		w = ClearBit(w, i)
	}
	expect(t, uint64(0), w)
}

func Test_Log2Floor(t *testing.T) {
	ins := []int{-5, 0, 1, 2, 3, 4, 7, 8, 9, 1023, 1024, 1 << 40}
	ans := []int{-1, -1, 0, 1, 1, 2, 2, 3, 3, 9, 10, 40}
	for i := range ins {
		expect(t, ans[i], Log2Floor(ins[i]), F("%d", ins[i]))
	}
	// Agrees with a plain loop.
	for i := 0; i < 1000; i++ {
		x := rand.Intn(1<<30) + 1
		lg := 0
		for (1 << (lg + 1)) <= x {
			lg++
		}
		expect(t, lg, Log2Floor(x), F("%d", x))
	}
}

func Benchmark_LowestSetBit(b *testing.B) {
	words := make([]uint64, 1024)
	for i := range words {
		words[i] = rand.Uint64() | 1<<63
	}
	b.ResetTimer()
	acc := 0
	for i := 0; i < b.N; i++ {
		acc += LowestSetBit(words[i&1023])
	}
	_ = acc
}
