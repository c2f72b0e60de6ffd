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

package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSentence(t *testing.T) {
	tokens := NewTokenizer(0).Tokenize("Кот сидит на окне.")
	assert.Len(t, tokens, 5)
	assert.Equal(t, []string{"кот", "сидит", "на", "окне"}, Words(tokens))
	assert.Equal(t, "Кот", tokens[0].Raw)
	assert.False(t, tokens[4].IsWord())
	assert.Equal(t, ".", tokens[4].Raw)
	for i, tok := range tokens {
		assert.Equal(t, i, tok.Position)
	}
}

func TestTokenizeSplitsHyphenCompounds(t *testing.T) {
	tokens := NewTokenizer(0).Tokenize("кто-то")
	assert.Equal(t, []string{"кто", "то"}, Words(tokens))
	// U+2010 counts as a boundary too
	tokens = NewTokenizer(0).Tokenize("кто‐то")
	assert.Equal(t, []string{"кто", "то"}, Words(tokens))
}

func TestTokenizeGroupsPunctuationRuns(t *testing.T) {
	tokens := NewTokenizer(0).Tokenize("Где?!")
	assert.Len(t, tokens, 2)
	assert.Equal(t, "?!", tokens[1].Raw)
	assert.Empty(t, tokens[1].Word)
}

func TestTokenizeQuotedWord(t *testing.T) {
	tokens := NewTokenizer(0).Tokenize("«Мама»")
	assert.Len(t, tokens, 3)
	assert.Equal(t, []string{"мама"}, Words(tokens))
}

func TestTokenizeKeepsDigitsInWords(t *testing.T) {
	tokens := NewTokenizer(0).Tokenize("дом2")
	assert.Len(t, tokens, 1)
	assert.Equal(t, "дом2", tokens[0].Word)
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, NewTokenizer(0).Tokenize(""))
	assert.Empty(t, NewTokenizer(0).Tokenize("  \t\n"))
}

func TestContextWindows(t *testing.T) {
	tokens := NewTokenizer(1).Tokenize("кот сидит на окне")
	assert.Nil(t, tokens[0].Prev)
	assert.Equal(t, []string{"сидит"}, tokens[0].Next)
	assert.Equal(t, []string{"кот"}, tokens[1].Prev)
	assert.Equal(t, []string{"на"}, tokens[1].Next)
	assert.Equal(t, []string{"на"}, tokens[3].Prev)
	assert.Nil(t, tokens[3].Next)
}

func TestContextSkipsPunctuation(t *testing.T) {
	tokens := NewTokenizer(1).Tokenize("кот, сидит")
	assert.Len(t, tokens, 3)
	sidit := tokens[2]
	assert.Equal(t, "сидит", sidit.Word)
	assert.Equal(t, []string{"кот"}, sidit.Prev)
}

func TestContextOrdering(t *testing.T) {
	tokens := NewTokenizer(3).Tokenize("раз два три четыре пять")
	chetyre := tokens[3]
	// nearest neighbor last on the left, first on the right
	assert.Equal(t, []string{"раз", "два", "три"}, chetyre.Prev)
	assert.Equal(t, []string{"пять"}, chetyre.Next)
}
