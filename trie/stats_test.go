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

package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsCountsAndDepth(t *testing.T) {
	tree := buildSampleTree(t)
	stats := tree.View().Stats(0)

	assert.Equal(t, 3, stats.KeyCount)
	// за, мок, кон, мо, ло, ко
	assert.Equal(t, 6, stats.NodeCount)
	assert.Equal(t, 3, stats.MaxDepth)
	assert.Equal(t, map[int]int{1: 2, 2: 3, 3: 1}, stats.LevelDistribution)
}

func TestStatsBranching(t *testing.T) {
	tree := buildSampleTree(t)
	stats := tree.View().Stats(0)
	// parents: root (2), за (2), мо (1), ло (1)
	assert.InDelta(t, 1.5, stats.AvgBranching, 0.0001)
}

func TestStatsTopSyllables(t *testing.T) {
	tree := buildSampleTree(t)
	stats := tree.View().Stats(2)

	assert.Len(t, stats.TopSyllables, 2)
	assert.Equal(t, SyllableFreq{Syllable: "за", Count: 4}, stats.TopSyllables[0])
	assert.Equal(t, SyllableFreq{Syllable: "мок", Count: 3}, stats.TopSyllables[1])
}

func TestStatsEmptyTree(t *testing.T) {
	stats := NewTree().View().Stats(0)
	assert.Equal(t, 0, stats.KeyCount)
	assert.Equal(t, 0, stats.NodeCount)
	assert.Equal(t, 0.0, stats.AvgBranching)
	assert.Empty(t, stats.TopSyllables)
	assert.Empty(t, stats.LevelDistribution)
}
