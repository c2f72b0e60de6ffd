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

package monitoring

import (
	"context"
	"testing"
	"time"

	"syltrie/rdb"
	"syltrie/serror"

	"github.com/stretchr/testify/assert"
)

type memWriter struct {
	recs []rdb.JobLog
}

func (m *memWriter) Write(rec rdb.JobLog) {
	m.recs = append(m.recs, rec)
}

func TestWorkerJobLoggerAggregates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sw := &memWriter{}
	wl := NewWorkerJobLogger(sw, time.UTC)
	wl.Start(ctx)

	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	wl.Log(rdb.JobLog{
		WorkerID: "w1", Func: "treeBuild", Begin: t0, End: t0.Add(2 * time.Second)})
	wl.Log(rdb.JobLog{
		WorkerID: "w1", Func: "treeSearch", Begin: t0.Add(3 * time.Second),
		End: t0.Add(4 * time.Second), Err: serror.InternalError{Msg: "boom"}})
	wl.Log(rdb.JobLog{
		WorkerID: "w2", Func: "treeSearch", Begin: t0.Add(5 * time.Second),
		End: t0.Add(6 * time.Second)})

	total := wl.TotalLoad()
	assert.Equal(t, 3, total.NumJobs)
	assert.Equal(t, 1, total.NumErrors)
	assert.Equal(t, 2, total.NumWorkers)
	assert.InDelta(t, 4.0, total.TotalTimeSecs, 0.001)
	assert.Equal(t, 6*time.Second, total.TotalSpan())
	assert.InDelta(t, 4.0/6.0/2.0, total.AvgLoad(), 0.001)

	recent := wl.RecentLoad()
	assert.Equal(t, 3, recent.NumJobs)
	assert.Equal(t, 2, recent.NumWorkers)

	w1, err := wl.TotalWorkerLoad("w1")
	assert.NoError(t, err)
	assert.Equal(t, 2, w1.NumJobs)
	assert.Equal(t, 1, w1.NumErrors)

	_, err = wl.TotalWorkerLoad("w3")
	assert.Equal(t, ErrWorkerNotFound, err)

	assert.Len(t, wl.RecentRecords(), 3)
	assert.Len(t, sw.recs, 3)
}

func TestWorkerJobLoggerRecentWorkerLoad(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wl := NewWorkerJobLogger(&memWriter{}, time.UTC)
	wl.Start(ctx)

	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	wl.Log(rdb.JobLog{
		WorkerID: "w1", Func: "tagWord", Begin: t0, End: t0.Add(time.Second)})

	load, err := wl.RecentWorkerLoad("w1")
	assert.NoError(t, err)
	assert.Equal(t, 1, load.NumJobs)
	assert.Equal(t, 1, load.NumWorkers)

	_, err = wl.RecentWorkerLoad("w2")
	assert.Equal(t, ErrWorkerNotFound, err)
}
