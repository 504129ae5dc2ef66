// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for
// github.com/dramstat/dramstat/storage/db.OpenSQL. It must be imported
// instead of go-sqlite3 to ensure foreign keys are properly honored.
package sqlite3

import (
	"database/sql"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/dramstat/dramstat/storage/db"
)

func init() {
	db.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		if driver, ok := db.Driver().(*sqlite3.SQLiteDriver); ok {
			driver.ConnectHook = func(c *sqlite3.SQLiteConn) error {
				_, err := c.Exec("PRAGMA foreign_keys = ON;", nil)
				return err
			}
		}
		// An in-memory database is private to its connection.
		db.SetMaxOpenConns(1)
		return nil
	})
}
