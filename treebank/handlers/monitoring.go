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

package handlers

import (
	"syltrie/rdb"
	"syltrie/rdb/results"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// WorkerInfo godoc
// @Summary      Show the load of the answering worker
// @Description  Report the load of whichever worker picks the query up,
// @Description  along with the trees it currently holds in memory.
// @Produce      json
// @Success      200 {object} results.WorkerInfoResponse
// @Router       /monitoring/workers [get]
func (a *Actions) WorkerInfo(ctx *gin.Context) {
	rawResult, ok := a.runQuery(ctx, "workerInfo", rdb.WorkerInfoArgs{})
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.WorkerInfo](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}
