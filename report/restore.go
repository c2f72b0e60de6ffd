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
	"syltrie/morph"
	"syltrie/trie"
)

// SummarizeView rebuilds a report source from a bare tree, e.g. one
// restored from the archive where the original build aggregates are
// gone. Per-POS counts and the number of inserted tokens are
// recomputed from record provenance; the skip list of the original
// build cannot be recovered and stays empty.
func SummarizeView(name string, v *trie.View, tokensTotal, topSyllables int) *TreeSummary {
	posCounts := make(map[morph.PartOfSpeech]int)
	var inserted int
	for entry := range v.TraverseAll() {
		for _, rec := range entry.Records {
			posCounts[rec.Tag] += rec.Count
			inserted += rec.Count
		}
	}
	return &TreeSummary{
		Name:           name,
		TokensTotal:    tokensTotal,
		TokensInserted: inserted,
		TokensSkipped:  tokensTotal - inserted,
		POSCounts:      posCounts,
		Stats:          v.Stats(topSyllables),
	}
}
