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

package trie

import (
	"fmt"

	"github.com/bytedance/sonic"

	"syltrie/serror"
)

// treeDump is the persisted form of a tree: the depth-first list of
// its entries in traversal order. Replaying the list against an empty
// tree reproduces both the child insertion order and the record sets
// with their provenance counts, so a round trip yields an observably
// identical tree.
type treeDump struct {
	Entries []Entry `json:"entries"`
}

// Serialize encodes the whole tree as JSON.
func (v *View) Serialize() ([]byte, error) {
	dump := treeDump{Entries: make([]Entry, 0, v.KeyCount())}
	for entry := range v.TraverseAll() {
		dump.Entries = append(dump.Entries, entry)
	}
	ans, err := sonic.Marshal(dump)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tree: %w", err)
	}
	return ans, nil
}

// Deserialize reconstructs a tree from its serialized form.
func Deserialize(data []byte) (*Tree, error) {
	var dump treeDump
	if err := sonic.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to deserialize tree: %w", err)
	}
	ans := NewTree()
	for _, entry := range dump.Entries {
		if len(entry.Key) == 0 {
			return nil, serror.EmptyKeyError{
				Msg: "serialized tree contains an entry with an empty key",
			}
		}
		for _, rec := range entry.Records {
			if rec.Count < 1 {
				return nil, fmt.Errorf(
					"failed to deserialize tree: entry %s has a record with count < 1",
					entry.Key,
				)
			}
			ans.insertRecord(entry.Key, rec.Parse, rec.Count)
		}
	}
	return ans, nil
}
