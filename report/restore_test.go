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

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"syltrie/assembler"
	"syltrie/morph"
	"syltrie/resolve"
	"syltrie/syllable"
	"syltrie/tokenizer"
)

func TestSummarizeViewMatchesBuildAggregates(t *testing.T) {
	tagger := morph.NewLexiconTagger(morph.DefaultLexicon())
	asm := assembler.NewAssembler(
		syllable.NewSyllabifier(""),
		tagger,
		resolve.NewResolver(resolve.NewHeuristicScorer(tagger, 0), 0),
	)
	build, err := asm.Run(
		tokenizer.NewTokenizer(0).Tokenize("Кот сидит на окне."))
	assert.NoError(t, err)

	orig := Summarize("intro", build, 5)
	restored := SummarizeView("intro", build.Tree, build.TokensTotal, 5)
	assert.Equal(t, orig.Name, restored.Name)
	assert.Equal(t, orig.TokensTotal, restored.TokensTotal)
	assert.Equal(t, orig.TokensInserted, restored.TokensInserted)
	assert.Equal(t, orig.TokensSkipped, restored.TokensSkipped)
	assert.Equal(t, orig.POSCounts, restored.POSCounts)
	assert.Equal(t, orig.Stats, restored.Stats)
	// the original skip list cannot be recovered from a bare tree
	assert.Empty(t, restored.Skipped)
}
