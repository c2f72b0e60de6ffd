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
	"time"

	"syltrie/rdb"

	"github.com/bytedance/sonic"
)

// StatusWriter is anything able to persist finished job records
// for later inspection.
type StatusWriter interface {
	Write(rec rdb.JobLog)
}

// ---

// WorkerLoad summarizes the work done by one worker (or a group
// of workers) over a period of time.
type WorkerLoad struct {
	NumJobs       int
	TotalTimeSecs float64
	NumErrors     int
	FirstUpdate   time.Time
	LastUpdate    time.Time
	NumWorkers    int
}

// TotalSpan returns time span covered by the load info
func (wl WorkerLoad) TotalSpan() time.Duration {
	return wl.LastUpdate.Sub(wl.FirstUpdate)
}

func (wl WorkerLoad) AvgLoad() float64 {
	if wl.TotalTimeSecs == 0 {
		return 0
	}
	return wl.TotalTimeSecs / wl.TotalSpan().Seconds() / float64(wl.NumWorkers)
}

func (wl WorkerLoad) MarshalJSON() ([]byte, error) {
	var t0, t1 *time.Time
	if !wl.FirstUpdate.IsZero() {
		t0 = &wl.FirstUpdate
	}
	if !wl.LastUpdate.IsZero() {
		t1 = &wl.LastUpdate
	}
	return sonic.Marshal(
		struct {
			NumJobs       int        `json:"numJobs"`
			TotalTimeSecs float64    `json:"totalTimeSecs"`
			NumErrors     int        `json:"numErrors"`
			FirstUpdate   *time.Time `json:"firstUpdate,omitempty"`
			LastUpdate    *time.Time `json:"lastUpdate,omitempty"`
			AvgLoad       float64    `json:"avgLoad"`
		}{
			NumJobs:       wl.NumJobs,
			TotalTimeSecs: wl.TotalTimeSecs,
			NumErrors:     wl.NumErrors,
			FirstUpdate:   t0,
			LastUpdate:    t1,
			AvgLoad:       wl.AvgLoad(),
		},
	)
}

// ---

// WorkersLoad maps worker IDs to their accumulated load stats.
type WorkersLoad map[string]WorkerLoad

// SumLoad merges the per-worker figures into a single one covering
// the whole worker group. Update times are reported in the provided
// timezone.
func (wl WorkersLoad) SumLoad(tz *time.Location) WorkerLoad {
	var ans WorkerLoad
	for _, load := range wl {
		ans.NumJobs += load.NumJobs
		ans.TotalTimeSecs += load.TotalTimeSecs
		ans.NumErrors += load.NumErrors
		if ans.FirstUpdate.IsZero() || load.FirstUpdate.Before(ans.FirstUpdate) {
			ans.FirstUpdate = load.FirstUpdate
		}
		if load.LastUpdate.After(ans.LastUpdate) {
			ans.LastUpdate = load.LastUpdate
		}
	}
	if !ans.FirstUpdate.IsZero() {
		ans.FirstUpdate = ans.FirstUpdate.In(tz)
	}
	if !ans.LastUpdate.IsZero() {
		ans.LastUpdate = ans.LastUpdate.In(tz)
	}
	ans.NumWorkers = len(wl)
	return ans
}

func (wl WorkersLoad) cleanOldRecords() {
	now := time.Now()
	for wID, load := range wl {
		if now.Sub(load.LastUpdate) > StaleWorkerLoadTTL {
			delete(wl, wID)
		}
	}
}
