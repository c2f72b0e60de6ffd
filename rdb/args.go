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

package rdb

// TreeBuildArgs describes a request to build a named syllable tree
// from a raw text.
type TreeBuildArgs struct {
	TreeID string `json:"treeId"`
	Text   string `json:"text"`
}

type TreeSearchArgs struct {
	TreeID string `json:"treeId"`
	Word   string `json:"word"`
}

type TreePrefixSearchArgs struct {
	TreeID    string   `json:"treeId"`
	Syllables []string `json:"syllables"`
	MaxItems  int      `json:"maxItems"`
}

type TreeEntriesArgs struct {
	TreeID   string `json:"treeId"`
	MaxItems int    `json:"maxItems"`
}

type TreeStatsArgs struct {
	TreeID       string `json:"treeId"`
	TopSyllables int    `json:"topSyllables"`
}

type TreeReportArgs struct {
	TreeID       string `json:"treeId"`
	TopSyllables int    `json:"topSyllables"`
}

type TreeListArgs struct {
}

type TreeDropArgs struct {
	TreeID string `json:"treeId"`
}

// TagWordArgs describes a single-word analysis request. Prev and
// Next hold the word's neighbors in text order (nearest neighbor
// last in Prev, first in Next) and may be empty.
type TagWordArgs struct {
	Word string   `json:"word"`
	Prev []string `json:"prev,omitempty"`
	Next []string `json:"next,omitempty"`
}

type SyllabifyWordArgs struct {
	Word string `json:"word"`
}

type WorkerInfoArgs struct {
}
