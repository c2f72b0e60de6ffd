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

// Package results defines the typed answers of the worker job
// functions. Each result carries its possible error as a typed
// value so the API side can map it to a proper HTTP status.
package results

import (
	"syltrie/monitoring"
	"syltrie/morph"
	"syltrie/rdb"
	"syltrie/report"
	"syltrie/resolve"
	"syltrie/syllable"
	"syltrie/treedb"
	"syltrie/trie"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/mquery-common/concordance"
)

func errToStr(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}

func entriesAsList(entries []trie.Entry) []trie.Entry {
	if entries != nil {
		return entries
	}
	return []trie.Entry{}
}

// ----

type TreeBuildResponse struct {
	TreeID     string              `json:"treeId"`
	Summary    *report.TreeSummary `json:"summary,omitempty"`
	ResultType rdb.ResultType      `json:"resultType"`
	Error      string              `json:"error,omitempty"`
} // @name TreeBuild

type TreeBuild struct {
	TreeID  string
	Summary *report.TreeSummary
	Error   error
}

func (res TreeBuild) Err() error {
	return res.Error
}

func (res TreeBuild) Type() rdb.ResultType {
	return rdb.ResultTypeTreeBuild
}

func (res TreeBuild) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(TreeBuildResponse{
		TreeID:     res.TreeID,
		Summary:    res.Summary,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type TreeSearchResponse struct {
	Word       string         `json:"word"`
	Syllables  syllable.Key   `json:"syllables"`
	Records    []morph.Record `json:"records"`
	Found      bool           `json:"found"`
	ResultType rdb.ResultType `json:"resultType"`
	Error      string         `json:"error,omitempty"`
} // @name TreeSearch

// TreeSearch is an exact wordform lookup answer. A miss is a valid
// answer with Found set to false, not an error.
type TreeSearch struct {
	Word      string
	Syllables syllable.Key
	Records   []morph.Record
	Found     bool
	Error     error
}

func (res TreeSearch) Err() error {
	return res.Error
}

func (res TreeSearch) Type() rdb.ResultType {
	return rdb.ResultTypeTreeSearch
}

func (res TreeSearch) MarshalJSON() ([]byte, error) {
	records := res.Records
	if records == nil {
		records = []morph.Record{}
	}
	return sonic.Marshal(TreeSearchResponse{
		Word:       res.Word,
		Syllables:  res.Syllables,
		Records:    records,
		Found:      res.Found,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type TreePrefixSearchResponse struct {
	Prefix     syllable.Key   `json:"prefix"`
	Entries    []trie.Entry   `json:"entries"`
	Truncated  bool           `json:"truncated"`
	ResultType rdb.ResultType `json:"resultType"`
	Error      string         `json:"error,omitempty"`
} // @name TreePrefixSearch

// TreePrefixSearch lists the keys sharing a syllable-wise prefix in
// their first-insertion order. Truncated reports that maxItems cut
// the walk short.
type TreePrefixSearch struct {
	Prefix    syllable.Key
	Entries   []trie.Entry
	Truncated bool
	Error     error
}

func (res TreePrefixSearch) Err() error {
	return res.Error
}

func (res TreePrefixSearch) Type() rdb.ResultType {
	return rdb.ResultTypeTreePrefixSearch
}

func (res TreePrefixSearch) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(TreePrefixSearchResponse{
		Prefix:     res.Prefix,
		Entries:    entriesAsList(res.Entries),
		Truncated:  res.Truncated,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type TreeEntriesResponse struct {
	Entries    []trie.Entry   `json:"entries"`
	Total      int            `json:"total"`
	Truncated  bool           `json:"truncated"`
	ResultType rdb.ResultType `json:"resultType"`
	Error      string         `json:"error,omitempty"`
} // @name TreeEntries

// TreeEntries pages through the complete tree traversal. Total is
// the number of keys in the whole tree regardless of truncation.
type TreeEntries struct {
	Entries   []trie.Entry
	Total     int
	Truncated bool
	Error     error
}

func (res TreeEntries) Err() error {
	return res.Error
}

func (res TreeEntries) Type() rdb.ResultType {
	return rdb.ResultTypeTreeEntries
}

func (res TreeEntries) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(TreeEntriesResponse{
		Entries:    entriesAsList(res.Entries),
		Total:      res.Total,
		Truncated:  res.Truncated,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type TreeStatsResponse struct {
	TreeID     string          `json:"treeId"`
	Stats      trie.Statistics `json:"stats"`
	ResultType rdb.ResultType  `json:"resultType"`
	Error      string          `json:"error,omitempty"`
} // @name TreeStats

type TreeStats struct {
	TreeID string
	Stats  trie.Statistics
	Error  error
}

func (res TreeStats) Err() error {
	return res.Error
}

func (res TreeStats) Type() rdb.ResultType {
	return rdb.ResultTypeTreeStats
}

func (res TreeStats) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(TreeStatsResponse{
		TreeID:     res.TreeID,
		Stats:      res.Stats,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type TreeReportResponse struct {
	Summary    *report.TreeSummary `json:"summary,omitempty"`
	ResultType rdb.ResultType      `json:"resultType"`
	Error      string              `json:"error,omitempty"`
} // @name TreeReport

// TreeReport carries the full tree summary; the API side renders it
// either as JSON or as a Markdown document.
type TreeReport struct {
	Summary *report.TreeSummary
	Error   error
}

func (res TreeReport) Err() error {
	return res.Error
}

func (res TreeReport) Type() rdb.ResultType {
	return rdb.ResultTypeTreeReport
}

func (res TreeReport) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(TreeReportResponse{
		Summary:    res.Summary,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type TreeListResponse struct {
	Trees      []treedb.TreeOverview `json:"trees"`
	ResultType rdb.ResultType        `json:"resultType"`
	Error      string                `json:"error,omitempty"`
} // @name TreeList

type TreeList struct {
	Trees []treedb.TreeOverview
	Error error
}

func (res TreeList) Err() error {
	return res.Error
}

func (res TreeList) Type() rdb.ResultType {
	return rdb.ResultTypeTreeList
}

func (res TreeList) MarshalJSON() ([]byte, error) {
	trees := res.Trees
	if trees == nil {
		trees = []treedb.TreeOverview{}
	}
	return sonic.Marshal(TreeListResponse{
		Trees:      trees,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type TreeDropResponse struct {
	TreeID     string         `json:"treeId"`
	ResultType rdb.ResultType `json:"resultType"`
	Error      string         `json:"error,omitempty"`
} // @name TreeDrop

type TreeDrop struct {
	TreeID string
	Error  error
}

func (res TreeDrop) Err() error {
	return res.Error
}

func (res TreeDrop) Type() rdb.ResultType {
	return rdb.ResultTypeTreeDrop
}

func (res TreeDrop) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(TreeDropResponse{
		TreeID:     res.TreeID,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type TagWordResponse struct {
	Word       string              `json:"word"`
	Candidates []morph.Candidate   `json:"candidates"`
	Resolution *resolve.Resolution `json:"resolution,omitempty"`
	Line       concordance.Line    `json:"line"`
	ResultType rdb.ResultType      `json:"resultType"`
	Error      string              `json:"error,omitempty"`
} // @name TagWord

// TagWord is a single-word analysis answer: the candidate parses,
// the context-resolved winner and the word in its context rendered
// as a concordance line with the target token highlighted.
type TagWord struct {
	Word       string
	Candidates []morph.Candidate
	Resolution *resolve.Resolution
	Line       concordance.Line
	Error      error
}

func (res TagWord) Err() error {
	return res.Error
}

func (res TagWord) Type() rdb.ResultType {
	return rdb.ResultTypeTagWord
}

func (res TagWord) MarshalJSON() ([]byte, error) {
	candidates := res.Candidates
	if candidates == nil {
		candidates = []morph.Candidate{}
	}
	return sonic.Marshal(TagWordResponse{
		Word:       res.Word,
		Candidates: candidates,
		Resolution: res.Resolution,
		Line:       res.Line,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type SyllabifyWordResponse struct {
	Word       string         `json:"word"`
	Syllables  syllable.Key   `json:"syllables"`
	ResultType rdb.ResultType `json:"resultType"`
	Error      string         `json:"error,omitempty"`
} // @name SyllabifyWord

type SyllabifyWord struct {
	Word      string
	Syllables syllable.Key
	Error     error
}

func (res SyllabifyWord) Err() error {
	return res.Error
}

func (res SyllabifyWord) Type() rdb.ResultType {
	return rdb.ResultTypeSyllabifyWord
}

func (res SyllabifyWord) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(SyllabifyWordResponse{
		Word:       res.Word,
		Syllables:  res.Syllables,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type WorkerInfoResponse struct {
	WorkerID   string                `json:"workerId"`
	TotalLoad  monitoring.WorkerLoad `json:"totalLoad"`
	RecentLoad monitoring.WorkerLoad `json:"recentLoad"`
	RecentJobs []rdb.JobLog          `json:"recentJobs"`
	Trees      []treedb.TreeOverview `json:"trees"`
	ResultType rdb.ResultType        `json:"resultType"`
	Error      string                `json:"error,omitempty"`
} // @name WorkerInfo

// WorkerInfo reports the answering worker's load along with the
// trees it currently holds.
type WorkerInfo struct {
	WorkerID   string
	TotalLoad  monitoring.WorkerLoad
	RecentLoad monitoring.WorkerLoad
	RecentJobs []rdb.JobLog
	Trees      []treedb.TreeOverview
	Error      error
}

func (res WorkerInfo) Err() error {
	return res.Error
}

func (res WorkerInfo) Type() rdb.ResultType {
	return rdb.ResultTypeWorkerInfo
}

func (res WorkerInfo) MarshalJSON() ([]byte, error) {
	jobs := res.RecentJobs
	if jobs == nil {
		jobs = []rdb.JobLog{}
	}
	trees := res.Trees
	if trees == nil {
		trees = []treedb.TreeOverview{}
	}
	return sonic.Marshal(WorkerInfoResponse{
		WorkerID:   res.WorkerID,
		TotalLoad:  res.TotalLoad,
		RecentLoad: res.RecentLoad,
		RecentJobs: jobs,
		Trees:      trees,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}
