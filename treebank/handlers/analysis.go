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
	"fmt"
	"net/http"

	"syltrie/rdb"
	"syltrie/rdb/results"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// TagWord godoc
// @Summary      Tag a single word and resolve its homonymy
// @Description  Runs the morphological tagger on the word and scores the
// @Description  candidates against the provided context. Both context
// @Description  arguments are comma-separated, the words nearest to the
// @Description  target last in `prev` and first in `next`.
// @Produce      json
// @Param        word query string true "A word to tag"
// @Param        prev query string false "Preceding context words"
// @Param        next query string false "Following context words"
// @Success      200 {object} results.TagWordResponse
// @Router       /analysis/tags [post]
func (a *Actions) TagWord(ctx *gin.Context) {
	word := ctx.Query("word")
	if word == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("missing argument `word`"),
			http.StatusBadRequest,
		)
		return
	}
	args := rdb.TagWordArgs{
		Word: word,
		Prev: splitURLList(ctx.Query("prev")),
		Next: splitURLList(ctx.Query("next")),
	}
	rawResult, ok := a.runQueryCached(ctx, "tagWord", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TagWord](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}

// Syllabify godoc
// @Summary      Split a word into syllables
// @Description  A word without a vowel comes back as a single syllable.
// @Produce      json
// @Param        word query string true "A word to split"
// @Success      200 {object} results.SyllabifyWordResponse
// @Router       /syllables [get]
func (a *Actions) Syllabify(ctx *gin.Context) {
	word := ctx.Query("word")
	if word == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("missing argument `word`"),
			http.StatusBadRequest,
		)
		return
	}
	args := rdb.SyllabifyWordArgs{
		Word: word,
	}
	rawResult, ok := a.runQueryCached(ctx, "syllabifyWord", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.SyllabifyWord](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}
