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

import "sort"

const DefaultTopSyllables = 20

// SyllableFreq is one row of the most-common-syllables statistic. The
// count sums inserted occurrences over all nodes sharing the syllable
// value, not just distinct wordforms.
type SyllableFreq struct {
	Syllable string `json:"syllable"`
	Count    int    `json:"count"`
}

// Statistics describes the shape of a finished tree.
type Statistics struct {
	KeyCount          int            `json:"keyCount"`
	NodeCount         int            `json:"nodeCount"`
	MaxDepth          int            `json:"maxDepth"`
	LevelDistribution map[int]int    `json:"levelDistribution"`
	AvgBranching      float64        `json:"avgBranching"`
	TopSyllables      []SyllableFreq `json:"topSyllables"`
}

// Stats walks the whole tree and aggregates its shape metrics.
// topN limits the most-common-syllables list; a non-positive value
// falls back to DefaultTopSyllables. Ordering of equally frequent
// syllables is alphabetical to keep the output reproducible.
func (v *View) Stats(topN int) Statistics {
	if topN <= 0 {
		topN = DefaultTopSyllables
	}
	ans := Statistics{
		KeyCount:          v.KeyCount(),
		NodeCount:         v.NodeCount(),
		MaxDepth:          v.Depth(),
		LevelDistribution: make(map[int]int),
	}
	sylFreq := make(map[string]int)
	numParents := 0
	numChildren := 0
	var collect func(n *node, level int)
	collect = func(n *node, level int) {
		if level > 0 {
			ans.LevelDistribution[level]++
			sylFreq[n.syllable] += n.visits
		}
		if len(n.order) > 0 {
			numParents++
			numChildren += len(n.order)
		}
		for _, syl := range n.order {
			collect(n.children[syl], level+1)
		}
	}
	collect(v.tree.root, 0)

	if numParents > 0 {
		ans.AvgBranching = float64(numChildren) / float64(numParents)
	}
	freqs := make([]SyllableFreq, 0, len(sylFreq))
	for syl, cnt := range sylFreq {
		freqs = append(freqs, SyllableFreq{Syllable: syl, Count: cnt})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Syllable < freqs[j].Syllable
	})
	if len(freqs) > topN {
		freqs = freqs[:topN]
	}
	ans.TopSyllables = freqs
	return ans
}
