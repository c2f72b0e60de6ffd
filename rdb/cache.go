// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
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
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"

	"syltrie/serror"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// CacheResult memoizes worker answers in a file cache keyed by the
// function and its arguments. It is only applicable to functions
// which are pure given the process configuration (word tagging,
// syllabification). Tree-scoped queries must never go through the
// cache as trees can be rebuilt or dropped at any time.
func (a *Adapter) CacheResult(fn func(Query) (<-chan *WorkerResult, error), query Query) (<-chan *WorkerResult, error) {
	if len(a.cachePath) == 0 {
		return fn(query)
	}

	hashKey := sha1.Sum(query.Args)
	path := filepath.Join(a.cachePath, query.Func+hex.EncodeToString(hashKey[:]))

	pe := fs.PathExists(path)
	isf, _ := fs.IsFile(path)
	ans := make(chan *WorkerResult)
	if pe && isf {
		go func() {
			defer close(ans)
			content, err := os.ReadFile(path)
			if err != nil {
				log.Err(err).Msgf("Error while reading cache file %s", path)
				ans <- &WorkerResult{
					Value: ErrorResult{Func: query.Func, Error: serror.InternalError{Msg: err.Error()}},
				}
				return
			}
			result, err := DecodeWorkerResult(content)
			if err != nil {
				log.Err(err).Msgf("Error while decoding cache file %s", path)
				ans <- &WorkerResult{
					Value: ErrorResult{Func: query.Func, Error: serror.InternalError{Msg: err.Error()}},
				}
				return
			}
			ans <- result
		}()
		return ans, nil
	}

	wr, err := fn(query)
	if err != nil {
		return nil, err
	}
	go func(wr <-chan *WorkerResult) {
		defer close(ans)
		rawResult := <-wr
		// failed answers are passed through uncached so a transient
		// problem does not stick around
		if rawResult.Value != nil && rawResult.Value.Err() == nil {
			data, err := rawResult.Serialize()
			if err != nil {
				log.Err(err).Msgf("Error while serializing result for cache file %s", path)

			} else if err := os.WriteFile(path, data, 0644); err != nil {
				log.Err(err).Msgf("Error while writing cache file %s", path)
			}
		}
		ans <- rawResult
	}(wr)
	return ans, nil
}
