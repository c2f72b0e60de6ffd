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

package worker

import (
	"errors"
	"fmt"
	"strings"

	"syltrie/rdb"
	"syltrie/report"
	"syltrie/serror"
	"syltrie/treebank"
	"syltrie/treedb"
	"syltrie/trie"

	"github.com/czcorpus/mquery-common/concordance"
	"github.com/rs/zerolog/log"
)

// getTree fetches a tree record. A record this worker holds in memory
// is revalidated against the archive first so a rebuild or drop done
// by another worker takes effect here too; a record the worker does
// not hold is restored from the archive and put into the store so
// subsequent queries hit memory directly.
func (w *Worker) getTree(treeID string) (*treebank.TreeRecord, error) {
	if treeID == "" {
		return nil, serror.InputError{Msg: "missing tree ID"}
	}
	if rec, ok := w.trees.Get(treeID); ok {
		fresh, err := w.treeIsFresh(treeID, rec)
		if err != nil {
			return nil, err
		}
		if fresh {
			return rec, nil
		}
		log.Info().
			Str("treeId", treeID).
			Msg("in-memory tree superseded in the archive, reloading")
	}
	if w.archive == nil {
		return nil, serror.NotFoundError{
			Msg: fmt.Sprintf("tree %s not found", treeID),
		}
	}
	return w.restoreTree(treeID)
}

// treeIsFresh compares an in-memory tree with its archive row. A tree
// rebuilt by another worker leaves a newer created timestamp behind; a
// tree whose row disappeared was dropped and the memory copy is
// evicted with it. An unreachable archive keeps the memory copy in
// service.
func (w *Worker) treeIsFresh(treeID string, rec *treebank.TreeRecord) (bool, error) {
	if w.archive == nil {
		return true, nil
	}
	created, err := w.archive.TreeCreated(treeID)
	if errors.Is(err, treebank.ErrNotFound) {
		w.trees.Delete(treeID)
		return false, serror.NotFoundError{
			Msg: fmt.Sprintf("tree %s not found", treeID),
		}

	} else if err != nil {
		log.Warn().
			Err(err).
			Str("treeId", treeID).
			Msg("failed to check the tree archive, serving the in-memory tree")
		return true, nil
	}
	return !created.After(rec.Created), nil
}

func (w *Worker) restoreTree(treeID string) (*treebank.TreeRecord, error) {
	row, err := w.archive.LoadTree(treeID)
	if errors.Is(err, treebank.ErrNotFound) {
		return nil, serror.NotFoundError{
			Msg: fmt.Sprintf("tree %s not found", treeID),
		}

	} else if err != nil {
		return nil, serror.TypedOrInternal(err)
	}
	tree, err := trie.Deserialize(row.Data)
	if err != nil {
		return nil, serror.TypedOrInternal(err)
	}
	view := tree.View()
	rec := &treebank.TreeRecord{
		Summary: report.SummarizeView(treeID, view, row.NumTokens, w.setup.TopSyllables),
		View:    view,
		Created: row.Created,
	}
	w.trees.Put(treeID, rec)
	log.Info().
		Str("treeId", treeID).
		Int("numKeys", view.KeyCount()).
		Msg("restored tree from the archive")
	return rec, nil
}

func treeOverview(name string, rec *treebank.TreeRecord) treedb.TreeOverview {
	return treedb.TreeOverview{
		Name:      name,
		Created:   rec.Created,
		NumTokens: rec.Summary.TokensTotal,
		NumKeys:   rec.View.KeyCount(),
		NumNodes:  rec.View.NodeCount(),
		MaxDepth:  rec.View.Depth(),
		Loaded:    true,
	}
}

// concLine renders the analyzed word in its context as a concordance
// line with the target token highlighted.
func concLine(args rdb.TagWordArgs) concordance.Line {
	words := make([]string, 0, len(args.Prev)+1+len(args.Next))
	words = append(words, args.Prev...)
	words = append(words, args.Word)
	words = append(words, args.Next...)
	parser := concordance.NewLineParser([]string{"word"})
	lines := parser.Parse([]string{strings.Join(words, " ")})
	if len(lines) == 0 {
		return concordance.Line{}
	}
	line := lines[0]
	var idx int
	for _, elm := range line.Text {
		tok, ok := elm.(*concordance.Token)
		if !ok {
			continue
		}
		if idx == len(args.Prev) {
			tok.Strong = true
			break
		}
		idx++
	}
	return line
}
