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

// Package treedb archives serialized syllable trees in MySQL so
// a rebuilt worker can answer queries about trees built before its
// restart.
package treedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"syltrie/treebank"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTreeTable = "syltrie_trees"
)

/*
Expected table:

create table syltrie_trees (
  name varchar(127) NOT NULL PRIMARY KEY,
  created timestamp NOT NULL DEFAULT CURRENT_TIMESTAMP,
  num_tokens int NOT NULL,
  num_keys int NOT NULL,
  num_nodes int NOT NULL,
  max_depth int NOT NULL,
  data LONGTEXT NOT NULL
);
*/

type Conf struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Name      string `json:"name"`
	User      string `json:"user"`
	Password  string `json:"password"`
	PoolSize  int    `json:"poolSize"`
	TreeTable string `json:"treeTable"`
}

func (conf *Conf) SafeGetTreeTable() string {
	if conf == nil || conf.TreeTable == "" {
		return DefaultTreeTable
	}
	return conf.TreeTable
}

func Open(conf *Conf) (*sql.DB, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = fmt.Sprintf("%s:%d", conf.Host, conf.Port)
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	mconf.Params = map[string]string{"autocommit": "true"}
	db, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, err
	}
	if conf.PoolSize > 0 {
		db.SetMaxOpenConns(conf.PoolSize)
	}
	return db, nil
}

// ----

// TreeRow is one archived tree: its size metrics plus the
// serialized tree data.
type TreeRow struct {
	Name      string
	Created   time.Time
	NumTokens int
	NumKeys   int
	NumNodes  int
	MaxDepth  int
	Data      []byte
}

// TreeOverview describes an archived or stored tree without the
// data payload. Loaded tells whether a worker currently holds the
// tree in memory.
type TreeOverview struct {
	Name      string    `json:"name"`
	Created   time.Time `json:"created"`
	NumTokens int       `json:"numTokens"`
	NumKeys   int       `json:"numKeys"`
	NumNodes  int       `json:"numNodes"`
	MaxDepth  int       `json:"maxDepth"`
	Loaded    bool      `json:"loaded"`
}

// Archive provides access to the tree archive table.
type Archive struct {
	db        *sql.DB
	treeTable string
	ctx       context.Context
}

// StoreTree inserts a tree row, replacing a possible previous
// version of the same name.
func (arch *Archive) StoreTree(row TreeRow) error {
	sql1 := fmt.Sprintf(
		"INSERT INTO %s (name, created, num_tokens, num_keys, num_nodes, max_depth, data) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE created = VALUES(created), num_tokens = VALUES(num_tokens), "+
			"num_keys = VALUES(num_keys), num_nodes = VALUES(num_nodes), "+
			"max_depth = VALUES(max_depth), data = VALUES(data)",
		arch.treeTable,
	)
	log.Debug().Str("sql", sql1).Msgf("going to store tree %s", row.Name)
	_, err := arch.db.ExecContext(
		arch.ctx, sql1,
		row.Name, row.Created, row.NumTokens, row.NumKeys, row.NumNodes, row.MaxDepth, row.Data,
	)
	if err != nil {
		return fmt.Errorf("failed to store tree %s: %w", row.Name, err)
	}
	return nil
}

// LoadTree fetches an archived tree including its serialized data.
// In case the name is not present, treebank.ErrNotFound is returned.
func (arch *Archive) LoadTree(name string) (TreeRow, error) {
	sql1 := fmt.Sprintf(
		"SELECT name, created, num_tokens, num_keys, num_nodes, max_depth, data "+
			"FROM %s WHERE name = ?",
		arch.treeTable,
	)
	log.Debug().Str("sql", sql1).Msgf("going to load tree %s", name)
	var ans TreeRow
	err := arch.db.QueryRowContext(arch.ctx, sql1, name).Scan(
		&ans.Name, &ans.Created, &ans.NumTokens, &ans.NumKeys, &ans.NumNodes, &ans.MaxDepth, &ans.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return ans, treebank.ErrNotFound
	}
	if err != nil {
		return ans, fmt.Errorf("failed to load tree %s: %w", name, err)
	}
	return ans, nil
}

// TreeCreated fetches just the created timestamp of an archived tree.
// Workers use it to detect a tree rebuilt or dropped by another worker
// without pulling the data payload. In case the name is not present,
// treebank.ErrNotFound is returned.
func (arch *Archive) TreeCreated(name string) (time.Time, error) {
	sql1 := fmt.Sprintf("SELECT created FROM %s WHERE name = ?", arch.treeTable)
	var ans time.Time
	err := arch.db.QueryRowContext(arch.ctx, sql1, name).Scan(&ans)
	if errors.Is(err, sql.ErrNoRows) {
		return ans, treebank.ErrNotFound
	}
	if err != nil {
		return ans, fmt.Errorf("failed to check tree %s: %w", name, err)
	}
	return ans, nil
}

// ListTrees returns overviews of all the archived trees ordered by
// name.
func (arch *Archive) ListTrees() ([]TreeOverview, error) {
	sql1 := fmt.Sprintf(
		"SELECT name, created, num_tokens, num_keys, num_nodes, max_depth "+
			"FROM %s ORDER BY name",
		arch.treeTable,
	)
	rows, err := arch.db.QueryContext(arch.ctx, sql1)
	if err != nil {
		return nil, fmt.Errorf("failed to list trees: %w", err)
	}
	defer rows.Close()
	ans := make([]TreeOverview, 0, 10)
	for rows.Next() {
		var item TreeOverview
		err := rows.Scan(
			&item.Name, &item.Created, &item.NumTokens, &item.NumKeys, &item.NumNodes, &item.MaxDepth)
		if err != nil {
			return nil, fmt.Errorf("failed to list trees: %w", err)
		}
		ans = append(ans, item)
	}
	return ans, rows.Err()
}

// DeleteTree removes an archived tree. In case the name is not
// present, treebank.ErrNotFound is returned.
func (arch *Archive) DeleteTree(name string) error {
	sql1 := fmt.Sprintf("DELETE FROM %s WHERE name = ?", arch.treeTable)
	log.Debug().Str("sql", sql1).Msgf("going to delete tree %s", name)
	res, err := arch.db.ExecContext(arch.ctx, sql1, name)
	if err != nil {
		return fmt.Errorf("failed to delete tree %s: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete tree %s: %w", name, err)
	}
	if affected == 0 {
		return treebank.ErrNotFound
	}
	return nil
}

func NewArchive(ctx context.Context, db *sql.DB, conf *Conf) *Archive {
	return &Archive{
		db:        db,
		treeTable: conf.SafeGetTreeTable(),
		ctx:       ctx,
	}
}
