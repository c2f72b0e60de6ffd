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

// Package treebank manages named syllable trees as a service: the
// language pipeline configuration, the in-memory store of built
// trees and the related HTTP handlers.
package treebank

import (
	"errors"
	"fmt"

	"syltrie/assembler"
	"syltrie/morph"
	"syltrie/resolve"
	"syltrie/syllable"
	"syltrie/tokenizer"
	"syltrie/trie"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	dfltMaxItems     = 50
	dfltTopSyllables = trie.DefaultTopSyllables
)

// ErrNotFound is returned when a requested tree exists neither in
// the worker store nor in the archive.
var ErrNotFound = errors.New("tree not found")

type ResolverConf struct {
	WindowSize  int     `json:"windowSize"`
	SignalBonus float64 `json:"signalBonus"`
}

type SyllabifierConf struct {
	ExtraVowels string `json:"extraVowels"`
}

// Setup configures the language-processing pipeline and the default
// limits of tree queries. Zero values of the resolver, syllabifier
// and tokenizer options mean the built-in defaults.
type Setup struct {
	// LexiconPath is a path to a custom lexicon JSON file. If empty,
	// the embedded lexicon is used.
	LexiconPath string `json:"lexiconPath"`

	Resolver ResolverConf `json:"resolver"`

	Syllabifier SyllabifierConf `json:"syllabifier"`

	// ContextSize is the number of context words the tokenizer
	// attaches on each side of a token.
	ContextSize int `json:"contextSize"`

	// MaxItems limits prefix-search and entries answers in case
	// a client does not provide its own limit.
	MaxItems int `json:"maxItems"`

	// TopSyllables limits the most-frequent-syllables statistic.
	TopSyllables int `json:"topSyllables"`
}

func (s *Setup) ValidateAndDefaults(confContext string) error {
	if s == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if s.LexiconPath != "" {
		isFile, err := fs.IsFile(s.LexiconPath)
		if err != nil {
			return fmt.Errorf("failed to test `%s.lexiconPath`: %w", confContext, err)
		}
		if !isFile {
			return fmt.Errorf("`%s.lexiconPath` is not a file", confContext)
		}
	}
	if s.MaxItems == 0 {
		s.MaxItems = dfltMaxItems
		log.Warn().
			Int("value", s.MaxItems).
			Msgf("`%s.maxItems` not specified, using default", confContext)
	}
	if s.TopSyllables == 0 {
		s.TopSyllables = dfltTopSyllables
		log.Warn().
			Int("value", s.TopSyllables).
			Msgf("`%s.topSyllables` not specified, using default", confContext)
	}
	return nil
}

// ----

// Pipeline bundles ready-to-use language components built from a
// Setup. One pipeline serves any number of tree builds.
type Pipeline struct {
	Syllabifier *syllable.Syllabifier
	Tagger      morph.Tagger
	Resolver    *resolve.Resolver
	Tokenizer   *tokenizer.Tokenizer
}

func (p *Pipeline) NewAssembler() *assembler.Assembler {
	return assembler.NewAssembler(p.Syllabifier, p.Tagger, p.Resolver)
}

// BuildTree runs the complete pipeline over a raw text.
func (p *Pipeline) BuildTree(text string) (*assembler.BuildResult, error) {
	return p.NewAssembler().Run(p.Tokenizer.Tokenize(text))
}

func NewPipeline(setup *Setup) (*Pipeline, error) {
	var lex *morph.Lexicon
	if setup.LexiconPath != "" {
		var err error
		lex, err = morph.LoadLexicon(setup.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create pipeline: %w", err)
		}
		log.Info().Str("path", setup.LexiconPath).Msg("loaded custom lexicon")

	} else {
		lex = morph.DefaultLexicon()
	}
	tagger := morph.NewLexiconTagger(lex)
	return &Pipeline{
		Syllabifier: syllable.NewSyllabifier(setup.Syllabifier.ExtraVowels),
		Tagger:      tagger,
		Resolver: resolve.NewResolver(
			resolve.NewHeuristicScorer(tagger, setup.Resolver.SignalBonus),
			setup.Resolver.WindowSize,
		),
		Tokenizer: tokenizer.NewTokenizer(setup.ContextSize),
	}, nil
}
