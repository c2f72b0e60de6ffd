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

import (
	"bytes"
	"encoding/gob"
	"math"
	"time"

	"syltrie/serror"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const (
	ResultTypeTreeBuild        ResultType = "treeBuild"
	ResultTypeTreeSearch       ResultType = "treeSearch"
	ResultTypeTreePrefixSearch ResultType = "treePrefixSearch"
	ResultTypeTreeEntries      ResultType = "treeEntries"
	ResultTypeTreeStats        ResultType = "treeStats"
	ResultTypeTreeReport       ResultType = "treeReport"
	ResultTypeTreeList         ResultType = "treeList"
	ResultTypeTreeDrop         ResultType = "treeDrop"
	ResultTypeTagWord          ResultType = "tagWord"
	ResultTypeSyllabifyWord    ResultType = "syllabifyWord"
	ResultTypeWorkerInfo       ResultType = "workerInfo"
	ResultTypeError            ResultType = "error"
)

type ResultType string // @name ResultType

func (rt ResultType) String() string {
	return string(rt)
}

// ----------------

// FuncResult is an answer of a worker job function.
type FuncResult interface {
	Err() error
	Type() ResultType
}

// WorkerResult wraps a function result with job bookkeeping. The
// Value field holds a concrete result type registered with gob, so
// the API side gets the same typed value the worker produced.
type WorkerResult struct {
	ID           string
	Value        FuncResult
	HasUserError bool
	ProcBegin    time.Time
	ProcEnd      time.Time
}

func (wr *WorkerResult) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(wr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeWorkerResult(data []byte) (*WorkerResult, error) {
	ans := new(WorkerResult)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(ans); err != nil {
		return nil, err
	}
	return ans, nil
}

// CreateWorkerResult wraps a function answer for publishing. The
// HasUserError flag tells the API side whether a possible attached
// error is to be blamed on the user's input.
func CreateWorkerResult(value FuncResult) *WorkerResult {
	return &WorkerResult{
		ID:           uuid.New().String(),
		Value:        value,
		HasUserError: isUserError(value.Err()),
	}
}

func isUserError(err error) bool {
	if err == nil {
		return false
	}
	switch err.(type) {
	case serror.InputError, serror.NotFoundError, serror.EmptyInputError,
		serror.NoCandidatesError, serror.EmptyKeyError:
		return true
	}
	return false
}

// ----------------

// ErrorResult is the answer of jobs which failed before (or instead
// of) producing their regular typed result.
type ErrorResult struct {
	Func  string
	Error error
}

func (res ErrorResult) Err() error {
	return res.Error
}

func (res ErrorResult) Type() ResultType {
	return ResultTypeError
}

func (res ErrorResult) MarshalJSON() ([]byte, error) {
	var errStr string
	if res.Error != nil {
		errStr = res.Error.Error()
	}
	return sonic.Marshal(struct {
		Func       string     `json:"func,omitempty"`
		ResultType ResultType `json:"resultType"`
		Error      string     `json:"error"`
	}{
		Func:       res.Func,
		ResultType: res.Type(),
		Error:      errStr,
	})
}

// ----------------

// JobLog describes one finished worker job.
type JobLog struct {
	WorkerID string
	Func     string
	Begin    time.Time
	End      time.Time
	Err      error
}

func (jl JobLog) TimeSpent() time.Duration {
	return jl.End.Sub(jl.Begin)
}

func (jl JobLog) MarshalJSON() ([]byte, error) {
	var errStr string
	if jl.Err != nil {
		errStr = jl.Err.Error()
	}
	return sonic.Marshal(struct {
		WorkerID string    `json:"workerId"`
		Func     string    `json:"func"`
		Begin    time.Time `json:"begin"`
		End      time.Time `json:"end"`
		Error    string    `json:"error,omitempty"`
	}{
		WorkerID: jl.WorkerID,
		Func:     jl.Func,
		Begin:    jl.Begin,
		End:      jl.End,
		Error:    errStr,
	})
}

// ----------------

// NormRound normalizes a score-like value to two decimal places.
func NormRound(v float64) float64 {
	return math.Round(v*100) / 100
}
