package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/sugawarayuuta/sonnet"

	"github.com/ScottSallinen/rmq/utils"
)

const lineBufferSize = 1 << 20

func isJSON(path string) bool {
	return strings.HasSuffix(path, ".json")
}

// scanFields calls onField for every whitespace separated field of r, with its 1-based line number.
func scanFields(r io.Reader, onField func(field []byte, line int)) {
	scanner := utils.FastFileLines{Buf: make([]byte, lineBufferSize)}
	fields := make([][]byte, 0, 16)
	line := 0
	for buf := scanner.Scan(r); buf != nil; buf = scanner.Scan(r) {
		line++
		fields = utils.FastFields(fields, buf)
		for _, f := range fields {
			onField(f, line)
		}
	}
}

// ParseInts reads whitespace separated integers.
func ParseInts(r io.Reader) (vals []int64) {
	scanFields(r, func(field []byte, line int) {
		n, ok := utils.ToInt(field)
		if !ok {
			log.Panic().Msg("Not an integer on line " + utils.V(line) + ": " + string(field))
		}
		vals = append(vals, n)
	})
	return vals
}

// ParseDecimals reads whitespace separated decimals (e.g. 101.25, -3, 1e-4).
func ParseDecimals(r io.Reader) (vals []decimal.Decimal) {
	scanFields(r, func(field []byte, line int) {
		d, err := decimal.NewFromString(string(field))
		if err != nil {
			log.Panic().Err(err).Msg("Not a decimal on line " + utils.V(line) + ": " + string(field))
		}
		vals = append(vals, d)
	})
	return vals
}

// ParseQueries reads pairs of integers as half-open ranges. Pairs may span lines.
func ParseQueries(r io.Reader) (queries []utils.Pair[int, int]) {
	pending, havePending := 0, false
	scanFields(r, func(field []byte, line int) {
		n, ok := utils.ToInt(field)
		if !ok {
			log.Panic().Msg("Not a query bound on line " + utils.V(line) + ": " + string(field))
		}
		if !havePending {
			pending, havePending = int(n), true
			return
		}
		queries = append(queries, utils.Pair[int, int]{First: pending, Second: int(n)})
		havePending = false
	})
	if havePending {
		log.Panic().Msg("Query file has an unpaired bound: " + utils.V(pending))
	}
	return queries
}

// ParseJSON decodes a whole JSON document from r into out.
func ParseJSON[T any](r io.Reader) (out T) {
	data, err := io.ReadAll(r)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to read JSON input")
	}
	if err = sonnet.Unmarshal(data, &out); err != nil {
		log.Panic().Err(err).Msg("Failed to decode JSON input")
	}
	return out
}

// ParseJSONQueries decodes [[l, r], ...].
func ParseJSONQueries(r io.Reader) (queries []utils.Pair[int, int]) {
	raw := ParseJSON[[][2]int](r)
	queries = make([]utils.Pair[int, int], len(raw))
	for i := range raw {
		queries[i] = utils.Pair[int, int]{First: raw[i][0], Second: raw[i][1]}
	}
	return queries
}

func loadQueries(path string) []utils.Pair[int, int] {
	file := utils.OpenFile(path)
	defer file.Close()
	if isJSON(path) {
		return ParseJSONQueries(file)
	}
	return ParseQueries(file)
}

func loadValues[T any](path string, parse func(io.Reader) []T) []T {
	file := utils.OpenFile(path)
	defer file.Close()
	if isJSON(path) {
		return ParseJSON[[]T](file)
	}
	return parse(file)
}
