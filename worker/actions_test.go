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

package worker

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"syltrie/monitoring"
	"syltrie/rdb"
	"syltrie/serror"
	"syltrie/syllable"
	"syltrie/treebank"
	"syltrie/treedb"
)

type nullJobLogger struct{}

func (n nullJobLogger) Log(rec rdb.JobLog) {}

func (n nullJobLogger) TotalWorkerLoad(workerID string) (monitoring.WorkerLoad, error) {
	return monitoring.WorkerLoad{}, monitoring.ErrWorkerNotFound
}

func (n nullJobLogger) RecentWorkerLoad(workerID string) (monitoring.WorkerLoad, error) {
	return monitoring.WorkerLoad{}, monitoring.ErrWorkerNotFound
}

func (n nullJobLogger) RecentRecords() []rdb.JobLog {
	return []rdb.JobLog{}
}

// memArchive keeps archived trees in a plain map so multi-worker
// scenarios can share one archive without a database.
type memArchive struct {
	rows map[string]treedb.TreeRow
}

func newMemArchive() *memArchive {
	return &memArchive{rows: make(map[string]treedb.TreeRow)}
}

func (m *memArchive) StoreTree(row treedb.TreeRow) error {
	m.rows[row.Name] = row
	return nil
}

func (m *memArchive) LoadTree(name string) (treedb.TreeRow, error) {
	row, ok := m.rows[name]
	if !ok {
		return treedb.TreeRow{}, treebank.ErrNotFound
	}
	return row, nil
}

func (m *memArchive) ListTrees() ([]treedb.TreeOverview, error) {
	ans := make([]treedb.TreeOverview, 0, len(m.rows))
	for _, row := range m.rows {
		ans = append(ans, treedb.TreeOverview{
			Name:      row.Name,
			Created:   row.Created,
			NumTokens: row.NumTokens,
			NumKeys:   row.NumKeys,
			NumNodes:  row.NumNodes,
			MaxDepth:  row.MaxDepth,
		})
	}
	sort.Slice(ans, func(i, j int) bool { return ans[i].Name < ans[j].Name })
	return ans, nil
}

func (m *memArchive) DeleteTree(name string) error {
	if _, ok := m.rows[name]; !ok {
		return treebank.ErrNotFound
	}
	delete(m.rows, name)
	return nil
}

func (m *memArchive) TreeCreated(name string) (time.Time, error) {
	row, ok := m.rows[name]
	if !ok {
		return time.Time{}, treebank.ErrNotFound
	}
	return row.Created, nil
}

// newTestWorker creates a worker without Redis and without a tree
// archive; the actions under test never touch the queue.
func newTestWorker(t *testing.T) *Worker {
	return newTestWorkerWithArchive(t, "test-worker", nil)
}

func newTestWorkerWithArchive(t *testing.T, workerID string, arch TreeArchive) *Worker {
	setup := &treebank.Setup{MaxItems: 50, TopSyllables: 20}
	pipeline, err := treebank.NewPipeline(setup)
	assert.NoError(t, err)
	return NewWorker(workerID, nil, nil, nullJobLogger{}, setup, pipeline, arch)
}

func TestTreeBuildAndSearch(t *testing.T) {
	w := newTestWorker(t)
	build := w.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "кот сидит на окне"})
	assert.NoError(t, build.Err())
	assert.Equal(t, "t1", build.TreeID)
	assert.Equal(t, 4, build.Summary.TokensTotal)
	assert.Equal(t, 4, build.Summary.Stats.KeyCount)

	srch := w.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "сидит"})
	assert.NoError(t, srch.Err())
	assert.True(t, srch.Found)
	assert.Equal(t, syllable.Key{"си", "дит"}, srch.Syllables)
	assert.Len(t, srch.Records, 1)
	assert.Equal(t, 1, srch.Records[0].Count)
}

func TestTreeSearchMissReported(t *testing.T) {
	w := newTestWorker(t)
	build := w.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "кот сидит"})
	assert.NoError(t, build.Err())

	srch := w.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "молоко"})
	assert.NoError(t, srch.Err())
	assert.False(t, srch.Found)
	assert.Empty(t, srch.Records)
}

func TestTreeBuildMissingID(t *testing.T) {
	w := newTestWorker(t)
	ans := w.treeBuild(rdb.TreeBuildArgs{Text: "кот"})
	assert.IsType(t, serror.InputError{}, ans.Err())
}

func TestTreeQueriesUnknownTree(t *testing.T) {
	w := newTestWorker(t)
	assert.IsType(
		t, serror.NotFoundError{},
		w.treeSearch(rdb.TreeSearchArgs{TreeID: "nope", Word: "кот"}).Err())
	assert.IsType(
		t, serror.NotFoundError{},
		w.treeStats(rdb.TreeStatsArgs{TreeID: "nope"}).Err())
	assert.IsType(
		t, serror.NotFoundError{},
		w.treeDrop(rdb.TreeDropArgs{TreeID: "nope"}).Err())
}

func TestTreePrefixSearchSyllableWise(t *testing.T) {
	w := newTestWorker(t)
	build := w.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "молоко мама дом"})
	assert.NoError(t, build.Err())

	ans := w.treePrefixSearch(rdb.TreePrefixSearchArgs{
		TreeID:    "t1",
		Syllables: []string{"мо"},
		MaxItems:  10,
	})
	assert.NoError(t, ans.Err())
	assert.False(t, ans.Truncated)
	assert.Len(t, ans.Entries, 1)
	assert.Equal(t, syllable.Key{"мо", "ло", "ко"}, ans.Entries[0].Key)
}

func TestTreePrefixSearchTruncation(t *testing.T) {
	w := newTestWorker(t)
	build := w.treeBuild(rdb.TreeBuildArgs{
		TreeID: "t1", Text: "молоко море мост мама"})
	assert.NoError(t, build.Err())

	ans := w.treePrefixSearch(rdb.TreePrefixSearchArgs{
		TreeID:    "t1",
		Syllables: []string{"мо"},
		MaxItems:  1,
	})
	assert.NoError(t, ans.Err())
	assert.True(t, ans.Truncated)
	assert.Len(t, ans.Entries, 1)
}

func TestTreeEntriesPaging(t *testing.T) {
	w := newTestWorker(t)
	build := w.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "кот сидит на окне"})
	assert.NoError(t, build.Err())

	ans := w.treeEntries(rdb.TreeEntriesArgs{TreeID: "t1", MaxItems: 2})
	assert.NoError(t, ans.Err())
	assert.Equal(t, 4, ans.Total)
	assert.True(t, ans.Truncated)
	assert.Len(t, ans.Entries, 2)
	// insertion order preserved
	assert.Equal(t, syllable.Key{"кот"}, ans.Entries[0].Key)
}

func TestTreeReportRecomputesStats(t *testing.T) {
	w := newTestWorker(t)
	build := w.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "кот сидит на окне"})
	assert.NoError(t, build.Err())

	ans := w.treeReport(rdb.TreeReportArgs{TreeID: "t1", TopSyllables: 2})
	assert.NoError(t, ans.Err())
	assert.Equal(t, 4, ans.Summary.TokensTotal)
	assert.LessOrEqual(t, len(ans.Summary.Stats.TopSyllables), 2)
}

func TestTreeListWithoutArchive(t *testing.T) {
	w := newTestWorker(t)
	assert.NoError(t, w.treeBuild(rdb.TreeBuildArgs{TreeID: "b", Text: "кот"}).Err())
	assert.NoError(t, w.treeBuild(rdb.TreeBuildArgs{TreeID: "a", Text: "дом"}).Err())

	ans := w.treeList(rdb.TreeListArgs{})
	assert.NoError(t, ans.Err())
	assert.Len(t, ans.Trees, 2)
	assert.Equal(t, "a", ans.Trees[0].Name)
	assert.True(t, ans.Trees[0].Loaded)
	assert.Equal(t, "b", ans.Trees[1].Name)
}

func TestTreeDrop(t *testing.T) {
	w := newTestWorker(t)
	assert.NoError(t, w.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "кот"}).Err())

	ans := w.treeDrop(rdb.TreeDropArgs{TreeID: "t1"})
	assert.NoError(t, ans.Err())

	srch := w.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "кот"})
	assert.IsType(t, serror.NotFoundError{}, srch.Err())
}

func TestTreeRebuildVisibleAcrossWorkers(t *testing.T) {
	arch := newMemArchive()
	builder := newTestWorkerWithArchive(t, "w1", arch)
	peer := newTestWorkerWithArchive(t, "w2", arch)

	assert.NoError(t, builder.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "кот"}).Err())
	srch := peer.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "кот"})
	assert.NoError(t, srch.Err())
	assert.True(t, srch.Found)

	// the peer now holds t1 in memory; a rebuild must reach it anyway
	assert.NoError(t, builder.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "дом"}).Err())
	srch = peer.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "дом"})
	assert.NoError(t, srch.Err())
	assert.True(t, srch.Found)
	srch = peer.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "кот"})
	assert.NoError(t, srch.Err())
	assert.False(t, srch.Found)

	// the builder's own copy is up to date, no reload kicks in there
	srch = builder.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "дом"})
	assert.NoError(t, srch.Err())
	assert.True(t, srch.Found)
}

func TestTreeDropVisibleAcrossWorkers(t *testing.T) {
	arch := newMemArchive()
	builder := newTestWorkerWithArchive(t, "w1", arch)
	peer := newTestWorkerWithArchive(t, "w2", arch)

	assert.NoError(t, builder.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "кот"}).Err())
	srch := peer.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "кот"})
	assert.NoError(t, srch.Err())

	drop := builder.treeDrop(rdb.TreeDropArgs{TreeID: "t1"})
	assert.NoError(t, drop.Err())
	srch = peer.treeSearch(rdb.TreeSearchArgs{TreeID: "t1", Word: "кот"})
	assert.IsType(t, serror.NotFoundError{}, srch.Err())
}

func TestTagWordHomonymTieBreak(t *testing.T) {
	w := newTestWorker(t)
	ans := w.tagWord(rdb.TagWordArgs{Word: "замок"})
	assert.NoError(t, ans.Err())
	assert.Len(t, ans.Candidates, 2)
	// no disambiguating context, the first-listed candidate wins
	assert.Equal(t, ans.Candidates[0].Parse, ans.Resolution.Parse)
}

func TestSyllabifyWord(t *testing.T) {
	w := newTestWorker(t)
	ans := w.syllabifyWord(rdb.SyllabifyWordArgs{Word: "молоко"})
	assert.NoError(t, ans.Err())
	assert.Equal(t, syllable.Key{"мо", "ло", "ко"}, ans.Syllables)

	ans = w.syllabifyWord(rdb.SyllabifyWordArgs{Word: "..."})
	assert.IsType(t, serror.EmptyInputError{}, ans.Err())
}

func TestWorkerInfoListsTrees(t *testing.T) {
	w := newTestWorker(t)
	assert.NoError(t, w.treeBuild(rdb.TreeBuildArgs{TreeID: "t1", Text: "кот"}).Err())

	ans := w.workerInfo(rdb.WorkerInfoArgs{})
	assert.NoError(t, ans.Err())
	assert.Equal(t, "test-worker", ans.WorkerID)
	assert.Len(t, ans.Trees, 1)
	assert.Equal(t, "t1", ans.Trees[0].Name)
	assert.True(t, ans.Trees[0].Loaded)
}
