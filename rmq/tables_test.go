package rmq

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/rmq/utils"
)

func expect[T comparable](t *testing.T, expected T, given T, prefix ...string) {
	t.Helper()
	if expected != given {
		t.Error(strings.Join(prefix, " "), ": Expected: ", expected, " got: ", given)
	}
}

func Test_BuildLogsComponent(t *testing.T) {
	buf := new(bytes.Buffer)
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	}()

	NewMin([]int{3, 1, 2})
	expect(t, true, strings.Contains(buf.String(), `"component":"rmq"`), buf.String())
	expect(t, true, strings.Contains(buf.String(), `"blocks":1`), buf.String())
}

func Test_MaskStates(t *testing.T) {
	q := NewMin([]int{3, 1, 2, 2, 0})
	masksAns := []uint64{0b1, 0b10, 0b110, 0b1110, 0b10000}
	for i := range masksAns {
		expect(t, masksAns[i], q.masks[i], utils.F("mask %d", i))
	}
	// Equal elements both survive; the lower bit (earlier position) wins.
	expect(t, 2, q.inBlock(2, 3), "tie")
	expect(t, 1, q.inBlock(0, 3), "prefix")
	expect(t, 4, q.inBlock(1, 4), "last")
}

func Test_MaskFullBlock(t *testing.T) {
	// Strictly increasing: nothing is ever popped, every bit is set at the end of the block.
	vals := make([]int, 2*BlockSize)
	for i := range vals {
		vals[i] = i
	}
	q := NewMin(vals)
	expect(t, ^uint64(0), q.masks[BlockSize-1], "full")
	expect(t, uint64(1), q.masks[BlockSize], "reset at block")
	expect(t, BlockSize-1, q.inBlock(BlockSize-1, BlockSize-1), "last bit")
}

func Test_PrefixSuffix(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	vals := randomInts(rng, 5*BlockSize+17, 10)
	q := NewMin(vals)
	for i := range vals {
		start := i - i%BlockSize
		end := min(start+BlockSize, len(vals))
		pIdx, _, _ := ScanQuery(vals, lessInt, start, i+1)
		sIdx, _, _ := ScanQuery(vals, lessInt, i, end)
		expect(t, pIdx, q.prefix[i], utils.F("prefix %d", i))
		expect(t, sIdx, q.suffix[i], utils.F("suffix %d", i))
	}
}

func Test_SparseTable(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	vals := randomInts(rng, 37*BlockSize+5, 1000)
	q := NewMin(vals)
	m := numBlocks(len(vals))
	expect(t, 38, m, "blocks")
	expect(t, utils.Log2Floor(m)+1, len(q.table), "levels")
	for k := range q.table {
		expect(t, m-(1<<k)+1, len(q.table[k]), utils.F("level %d size", k))
		for b := range q.table[k] {
			end := min((b+(1<<k))*BlockSize, len(vals))
			idx, _, _ := ScanQuery(vals, lessInt, b*BlockSize, end)
			expect(t, idx, q.table[k][b], utils.F("table %v", [2]int{k, b}))
		}
	}
	for bLo := 0; bLo < m; bLo++ {
		for bHi := bLo + 1; bHi <= m; bHi++ {
			idx, _, _ := ScanQuery(vals, lessInt, bLo*BlockSize, min(bHi*BlockSize, len(vals)))
			expect(t, idx, q.blockRange(bLo, bHi), utils.F("blocks %v", [2]int{bLo, bHi}))
		}
	}
}

func Test_SingleBlockTable(t *testing.T) {
	q := NewMin([]int{4, 4, 1})
	expect(t, 1, len(q.table), "levels")
	expect(t, 2, q.table[0][0], "rep")
}

// -----------------------------------------------------------------------------
// Benchmarks
//

const benchN = 1 << 22

var benchVals []int

func benchFixture() []int {
	if benchVals == nil {
		rng := rand.New(rand.NewSource(42))
		benchVals = randomInts(rng, benchN, 1<<30)
	}
	return benchVals
}

func Benchmark_Build(b *testing.B) {
	vals := benchFixture()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewWithOptions(vals, lessInt, Options{Threads: 1})
	}
}

func Benchmark_BuildParallel(b *testing.B) {
	vals := benchFixture()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewWithOptions(vals, lessInt, Options{})
	}
}

func Benchmark_Query(b *testing.B) {
	vals := benchFixture()
	q := NewMin(vals)
	rng := rand.New(rand.NewSource(1))
	ranges := make([][2]int, 1024)
	for i := range ranges {
		ranges[i][0], ranges[i][1] = generateRange(rng, len(vals))
	}
	b.ResetTimer()
	acc := 0
	for i := 0; i < b.N; i++ {
		rg := ranges[i&1023]
		acc += q.Index(rg[0], rg[1])
	}
	_ = acc
}

func Benchmark_QueryInBlock(b *testing.B) {
	vals := benchFixture()
	q := NewMin(vals)
	b.ResetTimer()
	acc := 0
	for i := 0; i < b.N; i++ {
		start := (i & 1023) * BlockSize
		acc += q.Index(start+3, start+BlockSize-2)
	}
	_ = acc
}

func Benchmark_Scan(b *testing.B) {
	vals := benchFixture()
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	acc := 0
	for i := 0; i < b.N; i++ {
		l, r := generateRange(rng, 1<<16)
		idx, _, _ := ScanQuery(vals, lessInt, l, r)
		acc += idx
	}
	_ = acc
}
