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

package treebank

import (
	"sort"
	"sync"
	"time"

	"syltrie/report"
	"syltrie/trie"
)

// TreeRecord is one built tree as held by a worker: the read-only
// view plus the aggregates collected during its build.
type TreeRecord struct {
	Summary *report.TreeSummary
	View    *trie.View
	Created time.Time
}

// Store is a guarded in-memory registry of built trees keyed by the
// user-chosen tree ID. It is safe for concurrent use; the views it
// hands out are read-only by construction, so no locking applies to
// the trees themselves.
type Store struct {
	lock  sync.RWMutex
	trees map[string]*TreeRecord
}

func NewStore() *Store {
	return &Store{
		trees: make(map[string]*TreeRecord),
	}
}

func (s *Store) Put(treeID string, rec *TreeRecord) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.trees[treeID] = rec
}

func (s *Store) Get(treeID string) (*TreeRecord, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	rec, ok := s.trees[treeID]
	return rec, ok
}

// Delete removes a tree from the store and reports whether it was
// actually there.
func (s *Store) Delete(treeID string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok := s.trees[treeID]
	delete(s.trees, treeID)
	return ok
}

// List returns the IDs of the stored trees in lexical order.
func (s *Store) List() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	ans := make([]string, 0, len(s.trees))
	for treeID := range s.trees {
		ans = append(ans, treeID)
	}
	sort.Strings(ans)
	return ans
}

func (s *Store) Size() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.trees)
}
