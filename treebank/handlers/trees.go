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
	"strings"

	"syltrie/rdb"
	"syltrie/rdb/results"
	"syltrie/report"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type reportFormat string

func (rf reportFormat) Validate() error {
	if rf == "json" || rf == "markdown" {
		return nil
	}
	return fmt.Errorf("unsupported report format: %s", rf)
}

// TreeBuild godoc
// @Summary      Build a syllable tree from a submitted text
// @Description  Build (or replace) a named syllable tree. The request body
// @Description  is taken as the raw UTF-8 text to tokenize, tag and insert.
// @Produce      json
// @Param        treeId path string true "An ID under which the tree is stored"
// @Success      200 {object} results.TreeBuildResponse
// @Router       /corpora/{treeId}/tree [post]
func (a *Actions) TreeBuild(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(string(body)) == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("empty text submitted"),
			http.StatusBadRequest,
		)
		return
	}
	args := rdb.TreeBuildArgs{
		TreeID: ctx.Param("treeId"),
		Text:   string(body),
	}
	rawResult, ok := a.runQuery(ctx, "treeBuild", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TreeBuild](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}

// TreeSearch godoc
// @Summary      Search a word in a syllable tree
// @Description  Syllabify the word and look the syllable key up in the tree.
// @Description  A missing key is a regular answer with found=false.
// @Produce      json
// @Param        treeId path string true "Tree ID"
// @Param        word query string true "A word to look up"
// @Success      200 {object} results.TreeSearchResponse
// @Router       /corpora/{treeId}/search [get]
func (a *Actions) TreeSearch(ctx *gin.Context) {
	word := ctx.Query("word")
	if word == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("missing argument `word`"),
			http.StatusBadRequest,
		)
		return
	}
	args := rdb.TreeSearchArgs{
		TreeID: ctx.Param("treeId"),
		Word:   word,
	}
	rawResult, ok := a.runQuery(ctx, "treeSearch", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TreeSearch](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}

// TreePrefixSearch godoc
// @Summary      List entries below a syllable prefix
// @Description  Match whole syllables, not characters; the prefix ["мо"]
// @Description  covers мо-ло-ко but never мол.
// @Produce      json
// @Param        treeId path string true "Tree ID"
// @Param        syllables query string true "Comma-separated syllable prefix (e.g. за,мо)"
// @Param        maxItems query int false "Limit for the answer size"
// @Success      200 {object} results.TreePrefixSearchResponse
// @Router       /corpora/{treeId}/prefix-search [get]
func (a *Actions) TreePrefixSearch(ctx *gin.Context) {
	syllables := splitURLList(ctx.Query("syllables"))
	if len(syllables) == 0 {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("missing argument `syllables`"),
			http.StatusBadRequest,
		)
		return
	}
	maxItems, ok := GetURLIntArgOrFail(ctx, "maxItems", a.setup.MaxItems)
	if !ok {
		return
	}
	args := rdb.TreePrefixSearchArgs{
		TreeID:    ctx.Param("treeId"),
		Syllables: syllables,
		MaxItems:  maxItems,
	}
	rawResult, ok := a.runQuery(ctx, "treePrefixSearch", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TreePrefixSearch](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}

// TreeEntries godoc
// @Summary      List tree entries in insertion order
// @Produce      json
// @Param        treeId path string true "Tree ID"
// @Param        maxItems query int false "Limit for the answer size"
// @Success      200 {object} results.TreeEntriesResponse
// @Router       /corpora/{treeId}/entries [get]
func (a *Actions) TreeEntries(ctx *gin.Context) {
	maxItems, ok := GetURLIntArgOrFail(ctx, "maxItems", a.setup.MaxItems)
	if !ok {
		return
	}
	args := rdb.TreeEntriesArgs{
		TreeID:   ctx.Param("treeId"),
		MaxItems: maxItems,
	}
	rawResult, ok := a.runQuery(ctx, "treeEntries", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TreeEntries](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}

// TreeStats godoc
// @Summary      Structural statistics of a syllable tree
// @Produce      json
// @Param        treeId path string true "Tree ID"
// @Param        topSyllables query int false "Size of the most-frequent-syllables list"
// @Success      200 {object} results.TreeStatsResponse
// @Router       /corpora/{treeId}/stats [get]
func (a *Actions) TreeStats(ctx *gin.Context) {
	topSyllables, ok := GetURLIntArgOrFail(ctx, "topSyllables", a.setup.TopSyllables)
	if !ok {
		return
	}
	args := rdb.TreeStatsArgs{
		TreeID:       ctx.Param("treeId"),
		TopSyllables: topSyllables,
	}
	rawResult, ok := a.runQuery(ctx, "treeStats", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TreeStats](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}

// TreeReport godoc
// @Summary      Summary report of a syllable tree
// @Description  With format=markdown, the answer is a Markdown document
// @Description  instead of JSON.
// @Produce      json
// @Param        treeId path string true "Tree ID"
// @Param        topSyllables query int false "Size of the most-frequent-syllables table"
// @Param        format query string false "Report format" enums(json, markdown) default(json)
// @Success      200 {object} results.TreeReportResponse
// @Router       /corpora/{treeId}/report [get]
func (a *Actions) TreeReport(ctx *gin.Context) {
	format := reportFormat(ctx.DefaultQuery("format", "json"))
	if err := format.Validate(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	topSyllables, ok := GetURLIntArgOrFail(ctx, "topSyllables", a.setup.TopSyllables)
	if !ok {
		return
	}
	args := rdb.TreeReportArgs{
		TreeID:       ctx.Param("treeId"),
		TopSyllables: topSyllables,
	}
	rawResult, ok := a.runQuery(ctx, "treeReport", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TreeReport](ctx, rawResult)
	if !ok {
		return
	}
	if format == "markdown" {
		ctx.Header("Content-Type", "text/markdown; charset=utf-8")
		ctx.Writer.WriteString(report.ToMarkdown(result.Summary))
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}

// TreeList godoc
// @Summary      List known syllable trees
// @Description  Covers both the trees loaded in worker memory and the ones
// @Description  only present in the archive database.
// @Produce      json
// @Success      200 {object} results.TreeListResponse
// @Router       /corpora [get]
func (a *Actions) TreeList(ctx *gin.Context) {
	rawResult, ok := a.runQuery(ctx, "treeList", rdb.TreeListArgs{})
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TreeList](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}

// TreeDrop godoc
// @Summary      Remove a syllable tree
// @Description  Drops the tree from worker memory and from the archive.
// @Produce      json
// @Param        treeId path string true "Tree ID"
// @Success      200 {object} results.TreeDropResponse
// @Router       /corpora/{treeId} [delete]
func (a *Actions) TreeDrop(ctx *gin.Context) {
	args := rdb.TreeDropArgs{
		TreeID: ctx.Param("treeId"),
	}
	rawResult, ok := a.runQuery(ctx, "treeDrop", args)
	if !ok {
		return
	}
	result, ok := TypedOrRespondError[results.TreeDrop](ctx, rawResult)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &result)
}
