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

	"syltrie/morph"
	"syltrie/serror"
	"syltrie/syllable"
)

func nounParse(lemma string) morph.Parse {
	return morph.Parse{
		Lemma:    lemma,
		Tag:      morph.PosNoun,
		Features: map[string]string{"gender": "neut", "number": "sing"},
	}
}

func collect(entries func(yield func(Entry) bool)) []Entry {
	ans := make([]Entry, 0)
	for entry := range entries {
		ans = append(ans, entry)
	}
	return ans
}

func TestInsertThenSearch(t *testing.T) {
	tree := NewTree()
	key := syllable.Key{"мо", "ло", "ко"}
	assert.NoError(t, tree.Insert(key, nounParse("молоко")))

	recs, ok := tree.Search(key)
	assert.True(t, ok)
	assert.Len(t, recs, 1)
	assert.Equal(t, "молоко", recs[0].Lemma)
	assert.Equal(t, 1, recs[0].Count)
}

func TestInsertEmptyKey(t *testing.T) {
	tree := NewTree()
	err := tree.Insert(syllable.Key{}, nounParse("молоко"))
	assert.Error(t, err)
	assert.IsType(t, serror.EmptyKeyError{}, err)
}

func TestDoubleInsertIncrementsProvenance(t *testing.T) {
	tree := NewTree()
	key := syllable.Key{"мо", "ло", "ко"}
	assert.NoError(t, tree.Insert(key, nounParse("молоко")))
	assert.NoError(t, tree.Insert(key, nounParse("молоко")))

	recs, ok := tree.Search(key)
	assert.True(t, ok)
	assert.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].Count)
	assert.Equal(t, 1, tree.KeyCount())
}

func TestHomonymsCoexistAtOneNode(t *testing.T) {
	tree := NewTree()
	key := syllable.Key{"за", "мок"}
	first := morph.Parse{
		Lemma: "замок", Tag: morph.PosNoun,
		Features: map[string]string{"stress": "initial"},
	}
	second := morph.Parse{
		Lemma: "замок", Tag: morph.PosNoun,
		Features: map[string]string{"stress": "final"},
	}
	assert.NoError(t, tree.Insert(key, first))
	assert.NoError(t, tree.Insert(key, second))
	assert.NoError(t, tree.Insert(key, first))

	recs, ok := tree.Search(key)
	assert.True(t, ok)
	assert.Len(t, recs, 2)
	assert.Equal(t, "initial", recs[0].Features["stress"])
	assert.Equal(t, 2, recs[0].Count)
	assert.Equal(t, "final", recs[1].Features["stress"])
	assert.Equal(t, 1, recs[1].Count)
	assert.Equal(t, 1, tree.KeyCount())
}

func TestSearchMiss(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ло", "ко"}, nounParse("молоко")))

	recs, ok := tree.Search(syllable.Key{"мо", "ре"})
	assert.False(t, ok)
	assert.Nil(t, recs)
}

func TestSearchInternalNodeIsMiss(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ло", "ко"}, nounParse("молоко")))

	// "мо" and "мо-ло" exist as nodes but carry no records
	_, ok := tree.Search(syllable.Key{"мо"})
	assert.False(t, ok)
	_, ok = tree.Search(syllable.Key{"мо", "ло"})
	assert.False(t, ok)
}

func TestPrefixSearchIsSyllableWise(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ло", "ко"}, nounParse("молоко")))
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ре"}, nounParse("море")))
	assert.NoError(t, tree.Insert(syllable.Key{"мол", "ва"}, nounParse("молва")))

	ans := collect(tree.PrefixSearch(syllable.Key{"мо"}))
	assert.Len(t, ans, 2)
	assert.Equal(t, syllable.Key{"мо", "ло", "ко"}, ans[0].Key)
	assert.Equal(t, syllable.Key{"мо", "ре"}, ans[1].Key)
}

func TestPrefixSearchMissingPrefix(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ре"}, nounParse("море")))
	ans := collect(tree.PrefixSearch(syllable.Key{"ре"}))
	assert.Empty(t, ans)
}

func TestPrefixSearchYieldsPrefixItself(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ре"}, nounParse("море")))
	ans := collect(tree.PrefixSearch(syllable.Key{"мо", "ре"}))
	assert.Len(t, ans, 1)
	assert.Equal(t, "море", ans[0].Word())
}

func TestTraversalFollowsInsertionOrder(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"ко", "шка"}, nounParse("кошка")))
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ре"}, nounParse("море")))
	assert.NoError(t, tree.Insert(syllable.Key{"ко", "ра"}, nounParse("кора")))
	assert.NoError(t, tree.Insert(syllable.Key{"ко"}, nounParse("ко")))

	ans := collect(tree.TraverseAll())
	words := make([]string, len(ans))
	for i, entry := range ans {
		words[i] = entry.Word()
	}
	// depth-first, children in first-insertion order; a record-bearing
	// node precedes its descendants
	assert.Equal(t, []string{"ко", "кошка", "кора", "море"}, words)
}

func TestTraversalIsRestartable(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ре"}, nounParse("море")))
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ло", "ко"}, nounParse("молоко")))

	first := collect(tree.TraverseAll())
	second := collect(tree.TraverseAll())
	assert.Equal(t, first, second)
}

func TestTraversalEarlyStop(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ре"}, nounParse("море")))
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ло", "ко"}, nounParse("молоко")))

	var seen int
	for range tree.TraverseAll() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestCounts(t *testing.T) {
	tree := NewTree()
	assert.Equal(t, 0, tree.NodeCount())
	assert.Equal(t, 0, tree.KeyCount())
	assert.Equal(t, 0, tree.Depth())

	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ло", "ко"}, nounParse("молоко")))
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ре"}, nounParse("море")))

	// мо, ло, ко, ре
	assert.Equal(t, 4, tree.NodeCount())
	assert.Equal(t, 2, tree.KeyCount())
	assert.Equal(t, 3, tree.Depth())
}

func TestViewCollectPrefix(t *testing.T) {
	tree := NewTree()
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ре"}, nounParse("море")))
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ло", "ко"}, nounParse("молоко")))
	assert.NoError(t, tree.Insert(syllable.Key{"мо", "ст"}, nounParse("мост")))

	view := tree.View()
	ans := view.CollectPrefix(syllable.Key{"мо"}, 2)
	assert.Len(t, ans, 2)
	all := view.CollectPrefix(nil, 0)
	assert.Len(t, all, 3)
}
