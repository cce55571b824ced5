package main

import (
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/ScottSallinen/rmq/rmq"
	"github.com/ScottSallinen/rmq/utils"
)

// Launch point. Parses command line arguments, builds the structure over the sequence file, and answers queries.
func main() {
	opts := FlagsToOptions()
	logger := utils.ComponentLogger("rmq-query")

	var out io.Writer = os.Stdout
	if opts.Output != "" {
		file := utils.CreateFile(opts.Output)
		defer file.Close()
		out = file
	}

	var queries []utils.Pair[int, int]
	if opts.Queries != "" {
		queries = loadQueries(opts.Queries)
	}

	var sum Summary
	if opts.Decimal {
		vals := loadValues(opts.Input, ParseDecimals)
		sum = Run(logger, vals, decimalOrder(opts.Max), queriesOrRandom(queries, len(vals), opts), opts, out)
	} else {
		vals := loadValues(opts.Input, ParseInts)
		sum = Run(logger, vals, intOrder(opts.Max), queriesOrRandom(queries, len(vals), opts), opts, out)
	}

	if sum.Mismatches > 0 {
		logger.Error().Int("mismatches", sum.Mismatches).Msg("Answers disagree with the linear scan")
		os.Exit(2)
	}
}

func queriesOrRandom(queries []utils.Pair[int, int], n int, opts QueryOptions) []utils.Pair[int, int] {
	if opts.Queries != "" {
		return queries
	}
	return RandomQueries(n, opts.NumRandom, opts.Seed)
}

func intOrder(useMax bool) rmq.Less[int64] {
	if useMax {
		return func(a, b int64) bool { return a > b }
	}
	return func(a, b int64) bool { return a < b }
}

func decimalOrder(useMax bool) rmq.Less[decimal.Decimal] {
	if useMax {
		return func(a, b decimal.Decimal) bool { return a.GreaterThan(b) }
	}
	return func(a, b decimal.Decimal) bool { return a.LessThan(b) }
}
