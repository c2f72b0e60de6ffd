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

// Package worker implements the job process holding syllable trees
// in memory. Workers listen on a shared Redis queue, each query is
// dispatched to a typed function and its typed answer is published
// back to the channel the API side waits on.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"syltrie/monitoring"
	"syltrie/rdb"
	"syltrie/serror"
	"syltrie/treebank"
	"syltrie/treedb"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTickerInterval = 2 * time.Second
)

type jobLogger interface {
	Log(rec rdb.JobLog)
	TotalWorkerLoad(workerID string) (monitoring.WorkerLoad, error)
	RecentWorkerLoad(workerID string) (monitoring.WorkerLoad, error)
	RecentRecords() []rdb.JobLog
}

// TreeArchive is the subset of the tree archive operations a worker
// needs. The archive row is the authoritative copy of each tree - the
// worker consults its created timestamp to notice trees rebuilt or
// dropped by its peers.
type TreeArchive interface {
	StoreTree(row treedb.TreeRow) error
	LoadTree(name string) (treedb.TreeRow, error)
	ListTrees() ([]treedb.TreeOverview, error)
	DeleteTree(name string) error
	TreeCreated(name string) (time.Time, error)
}

type recoveredError struct {
	error
}

// Worker processes tree queries from the shared queue. The trees it
// builds stay in its store; queries about a tree another worker (or
// a previous incarnation) built are answered by restoring the tree
// from the archive.
type Worker struct {
	ID         string
	messages   <-chan *redis.Message
	radapter   *rdb.Adapter
	ticker     *time.Ticker
	jobLogger  jobLogger
	currJobLog *rdb.JobLog

	setup    *treebank.Setup
	pipeline *treebank.Pipeline
	trees    *treebank.Store
	archive  TreeArchive // optional, may be nil
}

func (w *Worker) publishResult(res rdb.FuncResult, channel string) error {
	ans := rdb.CreateWorkerResult(res)
	ans.ProcEnd = time.Now()
	// currJobLog may be gone when reporting a failed publishing
	// of the regular answer
	if w.currJobLog != nil {
		ans.ProcBegin = w.currJobLog.Begin
		w.currJobLog.End = ans.ProcEnd
		w.currJobLog.Err = res.Err()
		w.jobLogger.Log(*w.currJobLog)
		w.currJobLog = nil
	}
	return w.radapter.PublishResult(channel, ans)
}

func (w *Worker) sendPublishingErr(query rdb.Query, err error) {
	ans := rdb.ErrorResult{Func: query.Func, Error: serror.TypedOrInternal(err)}
	if err := w.publishResult(ans, query.Channel); err != nil {
		log.Error().Err(err).Msg("failed to publish general publishing error")
	}
}

func (w *Worker) runQueryProtected(query rdb.Query) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = recoveredError{serror.PanicValueToErr(r)}
			return
		}
	}()
	var ans rdb.FuncResult
	switch query.Func {
	case "treeBuild":
		var args rdb.TreeBuildArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.treeBuild(args)
	case "treeSearch":
		var args rdb.TreeSearchArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.treeSearch(args)
	case "treePrefixSearch":
		var args rdb.TreePrefixSearchArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.treePrefixSearch(args)
	case "treeEntries":
		var args rdb.TreeEntriesArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.treeEntries(args)
	case "treeStats":
		var args rdb.TreeStatsArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.treeStats(args)
	case "treeReport":
		var args rdb.TreeReportArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.treeReport(args)
	case "treeList":
		var args rdb.TreeListArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.treeList(args)
	case "treeDrop":
		var args rdb.TreeDropArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.treeDrop(args)
	case "tagWord":
		var args rdb.TagWordArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.tagWord(args)
	case "syllabifyWord":
		var args rdb.SyllabifyWordArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.syllabifyWord(args)
	case "workerInfo":
		var args rdb.WorkerInfoArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans = w.workerInfo(args)
	default:
		ans = rdb.ErrorResult{
			Func:  query.Func,
			Error: serror.InputError{Msg: fmt.Sprintf("unknown query function: %s", query.Func)},
		}
	}
	if err := w.publishResult(ans, query.Channel); err != nil {
		w.sendPublishingErr(query, err)
		return err
	}
	return nil
}

func (w *Worker) tryNextQuery() error {

	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Any("args", query.Args).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			Any("args", query.Args).
			Msg("worker found an inactive query")
		return nil
	}

	w.currJobLog = &rdb.JobLog{
		WorkerID: w.ID,
		Func:     query.Func,
		Begin:    time.Now(),
	}

	err = w.runQueryProtected(query)
	var rcvErr recoveredError
	if errors.As(err, &rcvErr) {
		ans := rdb.ErrorResult{
			Func:  query.Func,
			Error: serror.RecoveredError{Msg: fmt.Sprintf("worker panicked: %s", rcvErr.Error())},
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) Start(ctx context.Context) {
	log.Info().Str("workerId", w.ID).Msg("starting tree worker")
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("worker exiting")
				return
			case <-w.ticker.C:
				w.tryNextQuery()
			case msg := <-w.messages:
				if msg.Payload == rdb.MsgNewQuery {
					w.tryNextQuery()
				}
			}
		}
	}()
}

func (w *Worker) Stop(ctx context.Context) error {
	log.Warn().Str("workerId", w.ID).Msg("shutting down tree worker")
	w.ticker.Stop()
	return nil
}

func NewWorker(
	workerID string,
	radapter *rdb.Adapter,
	messages <-chan *redis.Message,
	jobLogger jobLogger,
	setup *treebank.Setup,
	pipeline *treebank.Pipeline,
	archive TreeArchive,
) *Worker {
	return &Worker{
		ID:        workerID,
		radapter:  radapter,
		messages:  messages,
		ticker:    time.NewTicker(DefaultTickerInterval),
		jobLogger: jobLogger,
		setup:     setup,
		pipeline:  pipeline,
		trees:     treebank.NewStore(),
		archive:   archive,
	}
}
