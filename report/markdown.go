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

// Package report renders human-readable summaries of finished syllable
// trees. The Markdown output is meant for chat/issue pasting, so it
// sticks to plain pipe tables.
package report

import (
	"fmt"
	"sort"
	"strings"

	"syltrie/assembler"
	"syltrie/morph"
	"syltrie/trie"
)

// TreeSummary gathers everything the report shows about one finished
// tree.
type TreeSummary struct {
	Name           string                     `json:"name"`
	TokensTotal    int                        `json:"tokensTotal"`
	TokensInserted int                        `json:"tokensInserted"`
	TokensSkipped  int                        `json:"tokensSkipped"`
	POSCounts      map[morph.PartOfSpeech]int `json:"posCounts"`
	Stats          trie.Statistics            `json:"stats"`
	Skipped        []assembler.SkippedToken   `json:"skipped,omitempty"`
}

// Summarize extracts a report source from a finished build.
// topSyllables limits the most-frequent-syllables table (zero means
// the package default of the trie statistics).
func Summarize(name string, build *assembler.BuildResult, topSyllables int) *TreeSummary {
	return &TreeSummary{
		Name:           name,
		TokensTotal:    build.TokensTotal,
		TokensInserted: build.TokensInserted(),
		TokensSkipped:  build.TokensSkipped,
		POSCounts:      build.POSCounts,
		Stats:          build.Tree.Stats(topSyllables),
		Skipped:        build.Skipped,
	}
}

type posRow struct {
	tag   morph.PartOfSpeech
	count int
}

func sortedPOSRows(counts map[morph.PartOfSpeech]int) []posRow {
	ans := make([]posRow, 0, len(counts))
	for tag, cnt := range counts {
		ans = append(ans, posRow{tag: tag, count: cnt})
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].count != ans[j].count {
			return ans[i].count > ans[j].count
		}
		return ans[i].tag < ans[j].tag
	})
	return ans
}

// ToMarkdown renders the summary as a Markdown document.
func ToMarkdown(sum *TreeSummary) string {
	var ans strings.Builder
	ans.WriteString(fmt.Sprintf("## Syllable tree `%s`\n\n", sum.Name))
	ans.WriteString(fmt.Sprintf(
		"**tokens**: %d, **inserted**: %d, **skipped**: %d\n\n",
		sum.TokensTotal, sum.TokensInserted, sum.TokensSkipped,
	))

	ans.WriteString("### Part-of-speech distribution\n\n")
	ans.WriteString("|PoS | tokens |\n")
	ans.WriteString("|:---|-------:|\n")
	for _, row := range sortedPOSRows(sum.POSCounts) {
		ans.WriteString(fmt.Sprintf("| %s | %d |\n", row.tag, row.count))
	}
	ans.WriteString("\n")

	ans.WriteString("### Tree shape\n\n")
	ans.WriteString(fmt.Sprintf(
		"**distinct keys**: %d, **nodes**: %d, **depth**: %d, **avg. branching**: %.2f\n\n",
		sum.Stats.KeyCount, sum.Stats.NodeCount, sum.Stats.MaxDepth,
		sum.Stats.AvgBranching,
	))
	ans.WriteString("|level | nodes |\n")
	ans.WriteString("|-----:|------:|\n")
	for level := 1; level <= sum.Stats.MaxDepth; level++ {
		ans.WriteString(fmt.Sprintf(
			"| %d | %d |\n", level, sum.Stats.LevelDistribution[level]))
	}
	ans.WriteString("\n")

	if len(sum.Stats.TopSyllables) > 0 {
		ans.WriteString("### Most frequent syllables\n\n")
		ans.WriteString("|syllable | occurrences |\n")
		ans.WriteString("|:--------|------------:|\n")
		for _, freq := range sum.Stats.TopSyllables {
			ans.WriteString(fmt.Sprintf(
				"| %s | %d |\n", freq.Syllable, freq.Count))
		}
		ans.WriteString("\n")
	}

	if len(sum.Skipped) > 0 {
		ans.WriteString("### Skipped tokens\n\n")
		ans.WriteString("|position | token | reason |\n")
		ans.WriteString("|--------:|:------|:-------|\n")
		for _, skip := range sum.Skipped {
			ans.WriteString(fmt.Sprintf(
				"| %d | %s | %s |\n", skip.Position, skip.Raw, skip.Reason))
		}
		ans.WriteString("\n")
	}
	return ans.String()
}
