package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/rmq/utils"
)

type QueryOptions struct {
	Input     string // Sequence file. Whitespace separated numbers, or a JSON array for *.json.
	Queries   string // Query file. One "l r" pair per line, or a JSON array of [l, r] for *.json. Empty for random.
	Output    string // Answer file. Empty for stdout.
	NumRandom int    // Number of random queries when no query file is given.
	NumBuilds int    // Number of times to build (for timing); the last build answers queries.
	Threads   int    // Build threads.
	Seed      int64  // Seed for random queries.
	Max       bool   // Range maximum instead of range minimum.
	Decimal   bool   // Parse values as arbitrary precision decimals instead of int64.
	Check     bool   // Check every answer against a linear scan.
	JSON      bool   // Write answers as JSON lines.
	Quiet     bool   // Do not write answers (timing only).

	DebugLevel int
	NoColour   bool
}

// Declare your own flags before you call this function.
func FlagsToOptions() (opts QueryOptions) {
	inputPtr := flag.String("f", "", "Sequence file: whitespace separated numbers, or a JSON array if the name ends in .json.")
	queryPtr := flag.String("q", "", "Query file: one half-open range \"l r\" per line, or a JSON array of [l, r] pairs if the name ends in .json. \nIf empty, random queries are generated.")
	outPtr := flag.String("o", "", "Write answers to this file instead of stdout.")
	randPtr := flag.Int("n", 1000, "Number of random queries, when no query file is given.")
	buildsPtr := flag.Int("b", 1, "Number of builds to time. The median is reported.")
	threadPtr := flag.Int("t", runtime.NumCPU(), "Thread count for the per-block build phases.")
	seedPtr := flag.Int64("seed", 1, "Seed for random queries.")
	maxPtr := flag.Bool("max", false, "Answer range maximum instead of range minimum.")
	decimalPtr := flag.Bool("decimal", false, "Parse values as arbitrary precision decimals (e.g. prices) instead of integers.")
	checkPtr := flag.Bool("c", false, "Check every answer against a linear scan (slow).")
	jsonPtr := flag.Bool("json", false, "Write answers as JSON lines.")
	quietPtr := flag.Bool("quiet", false, "Do not write answers; only report timing.")
	debugPtr := flag.Int("debug", 0, "Level 0 for info, 1 for debug, 2 for trace.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	flag.Parse()

	if *colourPtr {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(*debugPtr)

	if *inputPtr == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *threadPtr <= 0 {
		log.Panic().Msg("Invalid thread count.")
	} else if *threadPtr > runtime.NumCPU() {
		log.Warn().Msg("Thread count is greater than CPU count?")
	}
	if *buildsPtr <= 0 {
		log.Panic().Msg("Invalid build count.")
	}
	if *randPtr < 0 {
		log.Panic().Msg("Invalid random query count.")
	}

	return QueryOptions{
		Input:      *inputPtr,
		Queries:    *queryPtr,
		Output:     *outPtr,
		NumRandom:  *randPtr,
		NumBuilds:  *buildsPtr,
		Threads:    *threadPtr,
		Seed:       *seedPtr,
		Max:        *maxPtr,
		Decimal:    *decimalPtr,
		Check:      *checkPtr,
		JSON:       *jsonPtr,
		Quiet:      *quietPtr,
		DebugLevel: *debugPtr,
		NoColour:   *colourPtr,
	}
}
