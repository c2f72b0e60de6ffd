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

// Package assembler drives one pass over a token stream: syllabify
// each token, obtain candidate analyses, resolve homonymy, insert
// into the tree. The pass is strictly sequential - one token is fully
// processed before the next begins - which the tree's insertion-order
// traversal guarantees depend on.
package assembler

import (
	"github.com/rs/zerolog/log"

	"syltrie/morph"
	"syltrie/resolve"
	"syltrie/serror"
	"syltrie/syllable"
	"syltrie/tokenizer"
	"syltrie/trie"
)

// SkippedToken records one token-level failure. Such failures are
// contract violations of the smallest unit of work and never abort
// the whole run.
type SkippedToken struct {
	Position int    `json:"position"`
	Raw      string `json:"raw"`
	Reason   string `json:"reason"`
}

// BuildResult is the outcome of one assembly run: the finished
// read-only tree plus the run-level aggregates collected incrementally
// during insertion, so no second traversal is needed for reporting.
type BuildResult struct {
	Tree          *trie.View
	TokensTotal   int
	TokensSkipped int
	Skipped       []SkippedToken
	POSCounts     map[morph.PartOfSpeech]int
}

// TokensInserted returns the number of tokens which made it into the
// tree.
func (br *BuildResult) TokensInserted() int {
	return br.TokensTotal - br.TokensSkipped
}

// UniqueKeys returns the number of distinct syllable keys stored.
func (br *BuildResult) UniqueKeys() int {
	return br.Tree.KeyCount()
}

// Assembler wires the syllabifier, a tagger and the resolver over a
// fresh tree. The tagger is an explicitly passed dependency so the
// whole pipeline can run against a stub in tests.
type Assembler struct {
	syllabifier *syllable.Syllabifier
	tagger      morph.Tagger
	resolver    *resolve.Resolver
}

func NewAssembler(
	syllabifier *syllable.Syllabifier,
	tagger morph.Tagger,
	resolver *resolve.Resolver,
) *Assembler {
	return &Assembler{
		syllabifier: syllabifier,
		tagger:      tagger,
		resolver:    resolver,
	}
}

// Run builds a tree from the token stream. Per-token failures
// (empty/punctuation-only tokens, tagger refusals, resolver contract
// violations) are converted to skip-with-warning; the run itself
// fails only when the stream is empty or every single token was
// skipped, i.e. the input is wholly unusable.
func (a *Assembler) Run(tokens []tokenizer.Token) (*BuildResult, error) {
	if len(tokens) == 0 {
		return nil, serror.InputError{Msg: "empty token stream"}
	}
	tree := trie.NewTree()
	ans := &BuildResult{
		TokensTotal: len(tokens),
		POSCounts:   make(map[morph.PartOfSpeech]int),
	}
	for _, tok := range tokens {
		if err := a.processToken(tree, ans, tok); err != nil {
			ans.TokensSkipped++
			ans.Skipped = append(ans.Skipped, SkippedToken{
				Position: tok.Position,
				Raw:      tok.Raw,
				Reason:   err.Error(),
			})
			log.Warn().
				Err(err).
				Int("position", tok.Position).
				Str("token", tok.Raw).
				Msg("skipping token")
		}
	}
	if ans.TokensSkipped == ans.TokensTotal {
		return nil, serror.InputError{
			Msg: "no token of the input could be processed",
		}
	}
	ans.Tree = tree.View()
	return ans, nil
}

func (a *Assembler) processToken(
	tree *trie.Tree,
	ans *BuildResult,
	tok tokenizer.Token,
) error {
	key, err := a.syllabifier.Syllabify(tok.Word)
	if err != nil {
		return err
	}
	cands, err := a.tagger.Analyze(tok.Word)
	if err != nil {
		return err
	}
	res, err := a.resolver.Resolve(
		tok.Word,
		cands,
		resolve.Context{Prev: tok.Prev, Next: tok.Next},
	)
	if err != nil {
		return err
	}
	if err := tree.Insert(key, res.Parse); err != nil {
		return err
	}
	ans.POSCounts[res.Parse.Tag]++
	return nil
}
