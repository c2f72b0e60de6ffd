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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"syltrie/assembler"
	"syltrie/morph"
	"syltrie/resolve"
	"syltrie/syllable"
	"syltrie/tokenizer"
)

func buildSummary(t *testing.T) *TreeSummary {
	tagger := morph.NewLexiconTagger(morph.DefaultLexicon())
	asm := assembler.NewAssembler(
		syllable.NewSyllabifier(""),
		tagger,
		resolve.NewResolver(resolve.NewHeuristicScorer(tagger, 0), 0),
	)
	build, err := asm.Run(
		tokenizer.NewTokenizer(0).Tokenize("Кот сидит на окне."))
	assert.NoError(t, err)
	return Summarize("intro", build, 5)
}

func TestSummarize(t *testing.T) {
	sum := buildSummary(t)
	assert.Equal(t, "intro", sum.Name)
	assert.Equal(t, 5, sum.TokensTotal)
	assert.Equal(t, 4, sum.TokensInserted)
	assert.Equal(t, 1, sum.TokensSkipped)
	assert.Equal(t, 4, sum.Stats.KeyCount)
	assert.Len(t, sum.Skipped, 1)
}

func TestToMarkdownSections(t *testing.T) {
	md := ToMarkdown(buildSummary(t))
	assert.Contains(t, md, "## Syllable tree `intro`")
	assert.Contains(t, md, "**tokens**: 5, **inserted**: 4, **skipped**: 1")
	assert.Contains(t, md, "| NOUN | 2 |")
	assert.Contains(t, md, "| VERB | 1 |")
	assert.Contains(t, md, "### Skipped tokens")
	assert.Contains(t, md, "| 4 | . |")
}

func TestToMarkdownPOSRowsOrdered(t *testing.T) {
	md := ToMarkdown(buildSummary(t))
	// equally frequent tags come alphabetically
	assert.Less(
		t,
		strings.Index(md, "| PREP |"),
		strings.Index(md, "| VERB |"),
	)
	assert.Less(
		t,
		strings.Index(md, "| NOUN |"),
		strings.Index(md, "| PREP |"),
	)
}

func TestToMarkdownOmitsEmptySections(t *testing.T) {
	sum := buildSummary(t)
	sum.Skipped = nil
	sum.Stats.TopSyllables = nil
	md := ToMarkdown(sum)
	assert.NotContains(t, md, "### Skipped tokens")
	assert.NotContains(t, md, "### Most frequent syllables")
}
