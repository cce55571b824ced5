package main

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/sugawarayuuta/sonnet"

	"github.com/ScottSallinen/rmq/enforce"
	"github.com/ScottSallinen/rmq/rmq"
	"github.com/ScottSallinen/rmq/utils"
)

// Answer is one answered query, as written to the output.
type Answer[T any] struct {
	L     int    `json:"l"`
	R     int    `json:"r"`
	Index int    `json:"index"`
	Value T      `json:"value"`
	Error string `json:"error,omitempty"`
}

// RandomQueries generates valid half-open ranges over a sequence of length n.
func RandomQueries(n int, count int, seed int64) []utils.Pair[int, int] {
	if n == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	queries := make([]utils.Pair[int, int], count)
	for i := range queries {
		l := rng.Intn(n)
		queries[i] = utils.Pair[int, int]{First: l, Second: l + 1 + rng.Intn(n-l)}
	}
	return queries
}

// Summary of a run; reported by the caller.
type Summary struct {
	Elements       int
	Queries        int
	Invalid        int           // Queries rejected as invalid ranges.
	Mismatches     int           // Answers that disagreed with the linear scan (with Check).
	CheckedAgainst int           // Answers compared with the linear scan.
	MedianBuild    time.Duration // Median over all builds.
	FastestBuild   time.Duration
	SlowestBuild   time.Duration
	QueryTime      time.Duration // Excludes output and checking.
	QueryWallTime  time.Duration // Includes checking.
}

// Run builds the structure (opts.NumBuilds times), answers every query, and writes answers to out.
func Run[T any](logger zerolog.Logger, vals []T, less rmq.Less[T], queries []utils.Pair[int, int], opts QueryOptions, out io.Writer) (sum Summary) {
	enforce.ENFORCE(opts.NumBuilds > 0, "Run: build count must be positive")
	sum.Elements = len(vals)
	sum.Queries = len(queries)

	var q *rmq.RMQ[T]
	buildTimes := make([]int64, opts.NumBuilds)
	watch := utils.Watch{}
	watch.Start()
	for b := 0; b < opts.NumBuilds; b++ {
		var err error
		q, err = rmq.NewChecked(vals, less, rmq.Options{Threads: opts.Threads})
		enforce.ENFORCE(err)
		buildTimes[b] = int64(watch.Lap())
	}
	sum.MedianBuild = time.Duration(utils.Percentile(buildTimes, 50))
	sum.FastestBuild = time.Duration(utils.MinSlice(buildTimes))
	sum.SlowestBuild = time.Duration(utils.MaxSlice(buildTimes))
	logger.Info().Int("n", len(vals)).Int("builds", opts.NumBuilds).
		Str("median", sum.MedianBuild.String()).Str("fastest", sum.FastestBuild.String()).Str("slowest", sum.SlowestBuild.String()).
		Msg("Built")
	if opts.DebugLevel > 0 {
		utils.MemoryStats()
	}

	answers := make([]Answer[T], len(queries))
	watch.Start()
	for i, qr := range queries {
		a := &answers[i]
		a.L, a.R = qr.First, qr.Second
		var err error
		if a.Index, a.Value, err = q.Query(a.L, a.R); err != nil {
			a.Error = err.Error()
			sum.Invalid++
		}
		if opts.Check {
			watch.Pause()
			if err = q.Check(a.L, a.R); err != nil {
				logger.Error().Err(err).Msg("Mismatch")
				sum.Mismatches++
			}
			sum.CheckedAgainst++
			watch.UnPause()
		}
	}
	sum.QueryTime = watch.Elapsed()
	sum.QueryWallTime = watch.AbsoluteElapsed()
	logger.Info().Int("queries", len(queries)).Int("invalid", sum.Invalid).
		Str("elapsed", sum.QueryTime.String()).Str("wall", sum.QueryWallTime.String()).Msg("Answered")
	if opts.Check {
		logger.Info().Int("checked", sum.CheckedAgainst).Int("mismatches", sum.Mismatches).Msg("Checked against linear scan")
	}

	if !opts.Quiet {
		writeAnswers(answers, opts.JSON, out)
	}
	return sum
}

func writeAnswers[T any](answers []Answer[T], asJSON bool, out io.Writer) {
	w := bufio.NewWriter(out)
	defer func() { enforce.ENFORCE(w.Flush()) }()
	for i := range answers {
		a := &answers[i]
		if asJSON {
			line, err := sonnet.Marshal(a)
			enforce.ENFORCE(err)
			_, err = w.Write(append(line, '\n'))
			enforce.ENFORCE(err)
			continue
		}
		var err error
		if a.Error != "" {
			_, err = w.WriteString(utils.V(a.L) + " " + utils.V(a.R) + " error " + a.Error + "\n")
		} else {
			_, err = w.WriteString(utils.V(a.L) + " " + utils.V(a.R) + " " + utils.V(a.Index) + " " + utils.V(a.Value) + "\n")
		}
		enforce.ENFORCE(err)
	}
}
