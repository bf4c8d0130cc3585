// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

var algoInit sync.Once

// FuzzyResult is one fuzzy match. Score is zero when the pattern does
// not match. Positions are the matched rune indices in ascending
// order, for highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch scores text against pattern with fzf's V2 algorithm,
// case-insensitively. slab may be nil; callers matching many
// candidates pass one to avoid per-call allocation.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}
	algoInit.Do(func() { algo.Init("default") })

	lowered := make([]rune, len(pattern))
	for index, r := range pattern {
		lowered[index] = unicode.ToLower(r)
	}
	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, false, true, &chars, lowered, true, slab)
	if result.Start < 0 || result.Score <= 0 {
		return FuzzyResult{}
	}

	match := FuzzyResult{Score: result.Score}
	if positions != nil {
		match.Positions = slices.Clone(*positions)
		slices.Sort(match.Positions)
	}
	return match
}

// Ranked is a candidate that matched a query.
type Ranked struct {
	Text  string
	Index int
	FuzzyResult
}

// RankFuzzy returns the candidates matching query, best first. Ties
// keep the candidates' original order. An empty query matches every
// candidate with a zero score.
func RankFuzzy(candidates []string, query string, slab *util.Slab) []Ranked {
	query = strings.TrimSpace(query)
	ranked := make([]Ranked, 0, len(candidates))
	if query == "" {
		for index, candidate := range candidates {
			ranked = append(ranked, Ranked{Text: candidate, Index: index})
		}
		return ranked
	}

	pattern := []rune(query)
	for index, candidate := range candidates {
		result := FuzzyMatch(candidate, pattern, slab)
		if result.Score == 0 {
			continue
		}
		ranked = append(ranked, Ranked{Text: candidate, Index: index, FuzzyResult: result})
	}
	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}
