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

package treebank

import (
	"testing"
	"time"

	"syltrie/trie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetDelete(t *testing.T) {
	store := NewStore()
	rec := &TreeRecord{
		View:    trie.NewTree().View(),
		Created: time.Now(),
	}
	store.Put("intro", rec)

	got, ok := store.Get("intro")
	require.True(t, ok)
	assert.Same(t, rec, got)
	assert.Equal(t, 1, store.Size())

	assert.True(t, store.Delete("intro"))
	assert.False(t, store.Delete("intro"))
	_, ok = store.Get("intro")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Size())
}

func TestStoreListOrdered(t *testing.T) {
	store := NewStore()
	for _, treeID := range []string{"zeta", "alpha", "mid"} {
		store.Put(treeID, &TreeRecord{View: trie.NewTree().View()})
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, store.List())
}

func TestPipelineBuildTree(t *testing.T) {
	pipeline, err := NewPipeline(&Setup{})
	require.NoError(t, err)

	build, err := pipeline.BuildTree("Кот сидит на окне.")
	require.NoError(t, err)
	assert.Equal(t, 5, build.TokensTotal)
	assert.Equal(t, 4, build.TokensInserted())
	assert.Equal(t, 4, build.UniqueKeys())
}

func TestSetupValidateAndDefaults(t *testing.T) {
	setup := &Setup{}
	require.NoError(t, setup.ValidateAndDefaults("treebank"))
	assert.Equal(t, dfltMaxItems, setup.MaxItems)
	assert.Equal(t, dfltTopSyllables, setup.TopSyllables)

	var missing *Setup
	assert.Error(t, missing.ValidateAndDefaults("treebank"))
}
