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

// Package handlers exposes the tree and analysis operations over
// HTTP. Each action publishes a query to the worker queue and
// translates the typed answer (or its typed error) into a JSON
// response.
package handlers

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"syltrie/rdb"
	"syltrie/serror"
	"syltrie/treebank"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// Actions contains the HTTP actions of the tree service.
type Actions struct {
	setup    *treebank.Setup
	radapter *rdb.Adapter
}

func NewActions(setup *treebank.Setup, radapter *rdb.Adapter) *Actions {
	return &Actions{
		setup:    setup,
		radapter: radapter,
	}
}

// runQuery publishes a query and waits for the worker answer. In
// case of a failure on any level, an error response is written and
// false is returned.
func (a *Actions) runQuery(ctx *gin.Context, fn string, args any) (*rdb.WorkerResult, bool) {
	query, err := rdb.NewQuery(fn, args)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return nil, false
	}
	wait, err := a.radapter.PublishQuery(query)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return nil, false
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return nil, false
	}
	return rawResult, true
}

// runQueryCached is runQuery for functions which are pure given the
// process configuration; their answers go through the file cache.
func (a *Actions) runQueryCached(ctx *gin.Context, fn string, args any) (*rdb.WorkerResult, bool) {
	query, err := rdb.NewQuery(fn, args)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return nil, false
	}
	wait, err := a.radapter.CacheResult(a.radapter.PublishQuery, query)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return nil, false
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return nil, false
	}
	return rawResult, true
}

func TypedOrRespondError[T any](ctx *gin.Context, w *rdb.WorkerResult) (T, bool) {
	var n T
	if w.Value == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("worker result of %s carries no value", reflect.TypeOf(n)),
			http.StatusInternalServerError,
		)
		return n, false
	}
	vt, ok := w.Value.(T)
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf(
				"unexpected type for %s: %s",
				reflect.TypeOf(n), reflect.TypeOf(w.Value)),
			http.StatusInternalServerError,
		)
		return n, false
	}
	return vt, true
}

func HandleWorkerError(ctx *gin.Context, result *rdb.WorkerResult) bool {
	if result.Value == nil {
		return true
	}
	if err := result.Value.Err(); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			errorStatus(err),
		)
		return false
	}
	return true
}

// errorStatus maps typed worker errors to HTTP statuses: bad input
// 400, a missing resource 404, a worker answer timeout 408 and
// anything else (including recovered panics) 500. Worker errors
// arrive as concrete serror values, never wrapped.
func errorStatus(err error) int {
	switch err.(type) {
	case serror.InputError, serror.EmptyInputError,
		serror.NoCandidatesError, serror.EmptyKeyError:
		return http.StatusBadRequest
	case serror.NotFoundError:
		return http.StatusNotFound
	case serror.TimeoutError:
		return http.StatusRequestTimeout
	}
	return http.StatusInternalServerError
}

// splitURLList parses a comma-separated URL argument, dropping empty
// chunks so a trailing comma does not produce an empty item.
func splitURLList(v string) []string {
	ans := make([]string, 0, 5)
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			ans = append(ans, item)
		}
	}
	return ans
}

func GetURLIntArgOrFail(ctx *gin.Context, name string, dflt int) (int, bool) {
	if !ctx.Request.URL.Query().Has(name) {
		return dflt, true
	}
	tmp := ctx.Request.URL.Query().Get(name)
	value, err := strconv.Atoi(tmp)
	if err != nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("invalid value of `%s`: %w", name, err),
			http.StatusBadRequest,
		)
		return 0, false
	}
	return value, true
}
