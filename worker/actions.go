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
	"errors"
	"fmt"
	"time"

	"syltrie/monitoring"
	"syltrie/rdb"
	"syltrie/rdb/results"
	"syltrie/report"
	"syltrie/resolve"
	"syltrie/serror"
	"syltrie/treebank"
	"syltrie/treedb"

	"github.com/rs/zerolog/log"
)

func (w *Worker) treeBuild(args rdb.TreeBuildArgs) results.TreeBuild {
	ans := results.TreeBuild{TreeID: args.TreeID}
	if args.TreeID == "" {
		ans.Error = serror.InputError{Msg: "missing tree ID"}
		return ans
	}
	build, err := w.pipeline.BuildTree(args.Text)
	if err != nil {
		ans.Error = serror.TypedOrInternal(err)
		return ans
	}
	rec := &treebank.TreeRecord{
		Summary: report.Summarize(args.TreeID, build, w.setup.TopSyllables),
		View:    build.Tree,
		Created: time.Now(),
	}
	// the archive row is the authoritative copy, so the tree enters
	// this worker's store only once it is safely archived
	if w.archive != nil {
		data, err := build.Tree.Serialize()
		if err != nil {
			ans.Error = serror.TypedOrInternal(err)
			return ans
		}
		err = w.archive.StoreTree(treedb.TreeRow{
			Name:      args.TreeID,
			Created:   rec.Created,
			NumTokens: build.TokensTotal,
			NumKeys:   build.Tree.KeyCount(),
			NumNodes:  build.Tree.NodeCount(),
			MaxDepth:  build.Tree.Depth(),
			Data:      data,
		})
		if err != nil {
			ans.Error = serror.TypedOrInternal(err)
			return ans
		}

	} else {
		log.Warn().
			Str("treeId", args.TreeID).
			Msg("tree archive not configured, the tree exists in worker memory only")
	}
	w.trees.Put(args.TreeID, rec)
	ans.Summary = rec.Summary
	return ans
}

func (w *Worker) treeSearch(args rdb.TreeSearchArgs) results.TreeSearch {
	ans := results.TreeSearch{Word: args.Word}
	rec, err := w.getTree(args.TreeID)
	if err != nil {
		ans.Error = err
		return ans
	}
	key, err := w.pipeline.Syllabifier.Syllabify(args.Word)
	if err != nil {
		ans.Error = serror.TypedOrInternal(err)
		return ans
	}
	ans.Syllables = key
	// a miss is a regular answer here, not an error
	ans.Records, ans.Found = rec.View.Search(key)
	return ans
}

func (w *Worker) treePrefixSearch(args rdb.TreePrefixSearchArgs) results.TreePrefixSearch {
	ans := results.TreePrefixSearch{Prefix: args.Syllables}
	if len(args.Syllables) == 0 {
		ans.Error = serror.InputError{Msg: "missing syllable prefix"}
		return ans
	}
	rec, err := w.getTree(args.TreeID)
	if err != nil {
		ans.Error = err
		return ans
	}
	// one extra entry tells us whether the limit cut the walk short
	entries := rec.View.CollectPrefix(args.Syllables, args.MaxItems+1)
	if args.MaxItems > 0 && len(entries) > args.MaxItems {
		entries = entries[:args.MaxItems]
		ans.Truncated = true
	}
	ans.Entries = entries
	return ans
}

func (w *Worker) treeEntries(args rdb.TreeEntriesArgs) results.TreeEntries {
	var ans results.TreeEntries
	rec, err := w.getTree(args.TreeID)
	if err != nil {
		ans.Error = err
		return ans
	}
	ans.Total = rec.View.KeyCount()
	ans.Entries = rec.View.CollectPrefix(nil, args.MaxItems)
	ans.Truncated = len(ans.Entries) < ans.Total
	return ans
}

func (w *Worker) treeStats(args rdb.TreeStatsArgs) results.TreeStats {
	ans := results.TreeStats{TreeID: args.TreeID}
	rec, err := w.getTree(args.TreeID)
	if err != nil {
		ans.Error = err
		return ans
	}
	ans.Stats = rec.View.Stats(args.TopSyllables)
	return ans
}

func (w *Worker) treeReport(args rdb.TreeReportArgs) results.TreeReport {
	var ans results.TreeReport
	rec, err := w.getTree(args.TreeID)
	if err != nil {
		ans.Error = err
		return ans
	}
	// the stored summary carries the build-time aggregates; only the
	// statistics part depends on the requested topSyllables
	summary := *rec.Summary
	summary.Stats = rec.View.Stats(args.TopSyllables)
	ans.Summary = &summary
	return ans
}

func (w *Worker) treeList(args rdb.TreeListArgs) results.TreeList {
	var ans results.TreeList
	archived := make(map[string]bool)
	if w.archive != nil {
		items, err := w.archive.ListTrees()
		if err != nil {
			ans.Error = serror.TypedOrInternal(err)
			return ans
		}
		for i, item := range items {
			_, loaded := w.trees.Get(item.Name)
			items[i].Loaded = loaded
			archived[item.Name] = true
		}
		ans.Trees = items
	}
	// trees built while the archive was down (or not configured)
	for _, name := range w.trees.List() {
		if archived[name] {
			continue
		}
		if rec, ok := w.trees.Get(name); ok {
			ans.Trees = append(ans.Trees, treeOverview(name, rec))
		}
	}
	return ans
}

func (w *Worker) treeDrop(args rdb.TreeDropArgs) results.TreeDrop {
	ans := results.TreeDrop{TreeID: args.TreeID}
	inMemory := w.trees.Delete(args.TreeID)
	if w.archive != nil {
		err := w.archive.DeleteTree(args.TreeID)
		if errors.Is(err, treebank.ErrNotFound) {
			if !inMemory {
				ans.Error = serror.NotFoundError{
					Msg: fmt.Sprintf("tree %s not found", args.TreeID),
				}
			}
			return ans

		} else if err != nil {
			ans.Error = serror.TypedOrInternal(err)
			return ans
		}
		return ans
	}
	if !inMemory {
		ans.Error = serror.NotFoundError{
			Msg: fmt.Sprintf("tree %s not found", args.TreeID),
		}
	}
	return ans
}

func (w *Worker) tagWord(args rdb.TagWordArgs) results.TagWord {
	ans := results.TagWord{Word: args.Word}
	candidates, err := w.pipeline.Tagger.Analyze(args.Word)
	if err != nil {
		ans.Error = serror.TypedOrInternal(err)
		return ans
	}
	resolution, err := w.pipeline.Resolver.Resolve(
		args.Word,
		candidates,
		resolve.Context{Prev: args.Prev, Next: args.Next},
	)
	if err != nil {
		ans.Error = serror.TypedOrInternal(err)
		return ans
	}
	ans.Candidates = candidates
	ans.Resolution = &resolution
	ans.Line = concLine(args)
	return ans
}

func (w *Worker) syllabifyWord(args rdb.SyllabifyWordArgs) results.SyllabifyWord {
	ans := results.SyllabifyWord{Word: args.Word}
	key, err := w.pipeline.Syllabifier.Syllabify(args.Word)
	if err != nil {
		ans.Error = serror.TypedOrInternal(err)
		return ans
	}
	ans.Syllables = key
	return ans
}

func (w *Worker) workerInfo(args rdb.WorkerInfoArgs) results.WorkerInfo {
	ans := results.WorkerInfo{WorkerID: w.ID}
	totalLoad, err := w.jobLogger.TotalWorkerLoad(w.ID)
	if err != nil && !errors.Is(err, monitoring.ErrWorkerNotFound) {
		ans.Error = serror.TypedOrInternal(err)
		return ans
	}
	recentLoad, err := w.jobLogger.RecentWorkerLoad(w.ID)
	if err != nil && !errors.Is(err, monitoring.ErrWorkerNotFound) {
		ans.Error = serror.TypedOrInternal(err)
		return ans
	}
	ans.TotalLoad = totalLoad
	ans.RecentLoad = recentLoad
	ans.RecentJobs = w.jobLogger.RecentRecords()
	for _, name := range w.trees.List() {
		if rec, ok := w.trees.Get(name); ok {
			ans.Trees = append(ans.Trees, treeOverview(name, rec))
		}
	}
	return ans
}
