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

// Package trie implements the syllable-keyed morphological tree.
// Wordforms are addressed by their syllable decomposition; a terminal
// node carries one or more resolved morphological records - homonyms
// sharing a spelling coexist there as a set. Nodes are exclusively
// owned by their parent, the structure is a strict tree.
package trie

import (
	"fmt"
	"iter"

	"syltrie/morph"
	"syltrie/serror"
	"syltrie/syllable"
)

type node struct {
	syllable string
	children map[string]*node
	// order keeps child syllables in first-insertion order; traversal
	// follows it, never a lexicographic one, so the tree shape stays
	// inspectable in the order words first appeared in the source
	order   []string
	records []*morph.Record
	// visits counts how many inserted occurrences passed through the
	// node, feeding syllable frequency statistics
	visits int
}

func newNode(syl string) *node {
	return &node{
		syllable: syl,
		children: make(map[string]*node),
	}
}

// Entry is one complete key of the tree together with its records.
type Entry struct {
	Key     syllable.Key   `json:"syllables"`
	Records []morph.Record `json:"records"`
}

// Word returns the wordform the entry describes.
func (e Entry) Word() string {
	return e.Key.Word()
}

// Tree is a syllable-keyed morphological tree under construction.
// It is not safe for concurrent use; a single goroutine owns it
// during the build phase. Once built, View() provides a read-only
// handle safe for concurrent readers.
type Tree struct {
	root      *node
	nodeCount int
	keyCount  int
	maxDepth  int
}

func NewTree() *Tree {
	return &Tree{root: newNode("")}
}

// Insert walks (and creates as needed) the node path along key and
// merges the parse into the terminal record set: a record with equal
// lemma, tag and features gets its provenance count incremented,
// otherwise a new record with count 1 is appended. The only possible
// failure is serror.EmptyKeyError for an empty key.
func (t *Tree) Insert(key syllable.Key, parse morph.Parse) error {
	if len(key) == 0 {
		return serror.EmptyKeyError{Msg: "cannot insert an empty syllable key"}
	}
	t.insertRecord(key, parse, 1)
	return nil
}

// insertRecord is the shared path-walking core of Insert and
// deserialization. It adds `count` occurrences of parse at key.
func (t *Tree) insertRecord(key syllable.Key, parse morph.Parse, count int) {
	curr := t.root
	curr.visits += count
	for i, syl := range key {
		child, ok := curr.children[syl]
		if !ok {
			child = newNode(syl)
			curr.children[syl] = child
			curr.order = append(curr.order, syl)
			t.nodeCount++
			if i+1 > t.maxDepth {
				t.maxDepth = i + 1
			}
		}
		child.visits += count
		curr = child
	}
	for _, rec := range curr.records {
		if rec.Parse.Equals(parse) {
			rec.Count += count
			return
		}
	}
	if len(curr.records) == 0 {
		t.keyCount++
	}
	curr.records = append(curr.records, &morph.Record{Parse: parse, Count: count})
}

// Search looks up a key by exact match. The second return value is
// false when the path does not exist or exists but carries no records
// (an internal-only node on the path of some longer key) - a plain
// lookup miss, not an error condition. The returned records are
// copies ordered by first insertion.
func (t *Tree) Search(key syllable.Key) ([]morph.Record, bool) {
	curr := t.root
	for _, syl := range key {
		child, ok := curr.children[syl]
		if !ok {
			return nil, false
		}
		curr = child
	}
	if len(curr.records) == 0 {
		return nil, false
	}
	return copyRecords(curr.records), true
}

// PrefixSearch lazily produces every complete key extending prefix,
// depth-first with children in first-insertion order. Each call
// starts a fresh traversal. The tree must not be mutated while a
// traversal is in flight.
func (t *Tree) PrefixSearch(prefix syllable.Key) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		start := t.root
		for _, syl := range prefix {
			child, ok := start.children[syl]
			if !ok {
				return
			}
			start = child
		}
		buf := make(syllable.Key, len(prefix), t.maxDepth+1)
		copy(buf, prefix)
		walk(start, buf, yield)
	}
}

// TraverseAll lazily produces every stored entry in depth-first
// first-insertion order; it equals PrefixSearch with an empty prefix.
func (t *Tree) TraverseAll() iter.Seq[Entry] {
	return t.PrefixSearch(nil)
}

// NodeCount returns the number of syllable nodes (the root does not
// count).
func (t *Tree) NodeCount() int {
	return t.nodeCount
}

// KeyCount returns the number of distinct stored keys, i.e. nodes
// carrying at least one record.
func (t *Tree) KeyCount() int {
	return t.keyCount
}

// Depth returns the length of the longest stored key.
func (t *Tree) Depth() int {
	return t.maxDepth
}

// View returns a read-only handle of the tree. The caller must stop
// inserting afterwards; with the build phase finished, concurrent
// readers of the view are safe as nothing mutates the structure any
// more.
func (t *Tree) View() *View {
	return &View{tree: t}
}

func walk(n *node, key syllable.Key, yield func(Entry) bool) bool {
	if len(n.records) > 0 {
		keyCopy := make(syllable.Key, len(key))
		copy(keyCopy, key)
		if !yield(Entry{Key: keyCopy, Records: copyRecords(n.records)}) {
			return false
		}
	}
	for _, syl := range n.order {
		if !walk(n.children[syl], append(key, syl), yield) {
			return false
		}
	}
	return true
}

func copyRecords(records []*morph.Record) []morph.Record {
	ans := make([]morph.Record, len(records))
	for i, rec := range records {
		ans[i] = *rec
	}
	return ans
}

// View is the non-mutable face of a finished tree handed to
// reporting, serialization and query consumers. It deliberately
// exposes no insertion method - immutability of the read phase is a
// property of the API, not of a lock.
type View struct {
	tree *Tree
}

func (v *View) Search(key syllable.Key) ([]morph.Record, bool) {
	return v.tree.Search(key)
}

func (v *View) PrefixSearch(prefix syllable.Key) iter.Seq[Entry] {
	return v.tree.PrefixSearch(prefix)
}

func (v *View) TraverseAll() iter.Seq[Entry] {
	return v.tree.TraverseAll()
}

func (v *View) NodeCount() int {
	return v.tree.NodeCount()
}

func (v *View) KeyCount() int {
	return v.tree.KeyCount()
}

func (v *View) Depth() int {
	return v.tree.Depth()
}

// CollectPrefix materializes up to maxItems entries of a prefix
// traversal; maxItems <= 0 means no limit.
func (v *View) CollectPrefix(prefix syllable.Key, maxItems int) []Entry {
	ans := make([]Entry, 0)
	for entry := range v.PrefixSearch(prefix) {
		if maxItems > 0 && len(ans) >= maxItems {
			break
		}
		ans = append(ans, entry)
	}
	return ans
}

func (v *View) String() string {
	return fmt.Sprintf(
		"trie.View{keys: %d, nodes: %d, depth: %d}",
		v.KeyCount(), v.NodeCount(), v.Depth(),
	)
}
