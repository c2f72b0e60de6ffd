// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYLTRIE.
//
//  SYLTRIE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYLTRIE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYLTRIE.  If not, see <https://www.gnu.org/licenses/>.

// Package resolve selects the most probable morphological analysis
// of a homonymous wordform based on a bounded window of surrounding
// tokens. The scoring is heuristic and fully deterministic - given
// identical inputs the same candidate always wins.
package resolve

import (
	"fmt"

	"syltrie/morph"
	"syltrie/serror"
)

const DefaultWindowSize = 1

// Context carries the tokens surrounding the target word. Prev is in
// text order with the nearest neighbor last, Next with the nearest
// neighbor first. Both may be empty at text edges.
type Context struct {
	Prev []string
	Next []string
}

// Window is a Context bounded to the resolver's window size.
type Window struct {
	Prev []string
	Next []string
}

// Scorer scores a single candidate against a context window and
// reports which signals fired, so a resolution can always be
// explained. Implementations must be deterministic.
type Scorer interface {
	Score(cand morph.Candidate, win Window) (float64, []string)
}

// Resolution is the outcome of homonymy resolution for one wordform
// occurrence.
type Resolution struct {
	Parse   morph.Parse `json:"parse"`
	Score   float64     `json:"score"`
	Signals []string    `json:"signals,omitempty"`
}

// Resolver picks one analysis out of tagger-provided candidates.
type Resolver struct {
	scorer     Scorer
	windowSize int
}

// NewResolver creates a resolver around a scoring strategy. A
// non-positive windowSize falls back to DefaultWindowSize.
func NewResolver(scorer Scorer, windowSize int) *Resolver {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Resolver{scorer: scorer, windowSize: windowSize}
}

// Resolve selects the highest-scoring candidate. It fails with
// serror.NoCandidatesError on an empty candidate list - a contract
// violation of the calling layer, as any tagger must supply at least
// a PosUnknown fallback. For any other input it succeeds: with no
// matching signal the highest-prior candidate wins and ties among
// equal scores resolve by higher prior, then by first position in
// the list, which keeps tree contents reproducible across runs.
func (r *Resolver) Resolve(word string, candidates []morph.Candidate, ctx Context) (Resolution, error) {
	if len(candidates) == 0 {
		return Resolution{}, serror.NoCandidatesError{
			Msg: fmt.Sprintf("no candidate analyses provided for wordform '%s'", word),
		}
	}
	win := r.boundWindow(ctx)
	best := 0
	bestScore, bestSignals := r.scorer.Score(candidates[0], win)
	for i := 1; i < len(candidates); i++ {
		score, signals := r.scorer.Score(candidates[i], win)
		if score > bestScore ||
			score == bestScore && candidates[i].Prior > candidates[best].Prior {
			best = i
			bestScore = score
			bestSignals = signals
		}
	}
	return Resolution{
		Parse:   candidates[best].Parse,
		Score:   bestScore,
		Signals: bestSignals,
	}, nil
}

// WindowSize returns the configured context span on each side.
func (r *Resolver) WindowSize() int {
	return r.windowSize
}

func (r *Resolver) boundWindow(ctx Context) Window {
	win := Window{}
	if len(ctx.Prev) > r.windowSize {
		win.Prev = ctx.Prev[len(ctx.Prev)-r.windowSize:]
	} else {
		win.Prev = ctx.Prev
	}
	if len(ctx.Next) > r.windowSize {
		win.Next = ctx.Next[:r.windowSize]
	} else {
		win.Next = ctx.Next
	}
	return win
}
