// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db stores benchmark runs and their results in a SQL
// database.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/dramstat/dramstat/benchconf"
	"github.com/dramstat/dramstat/benchresult"
	"github.com/dramstat/dramstat/sdram"
)

// DB is a high-level interface to a database of benchmark runs.
// It's safe for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun    *sql.Stmt
	insertResult *sql.Stmt
	countRuns    *sql.Stmt
	listResults  *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(driverName); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	SysClkFreq DOUBLE
);
CREATE TABLE IF NOT EXISTS Results (
	RunID BIGINT UNSIGNED,
	Seq BIGINT UNSIGNED,
	Name VARCHAR(255),
	Module VARCHAR(255),
	DataWidth INTEGER,
	Length INTEGER,
	Random BOOLEAN,
	PortWidth INTEGER,
	GeneratorTicks BIGINT,
	CheckerErrors BIGINT,
	CheckerTicks BIGINT,
	Output {{if .sqlite3}}BLOB{{else}}LONGBLOB{{end}},
	PRIMARY KEY (RunID, Seq),
{{if not .sqlite3}}
	Index (Module(100)),
{{end}}
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS ResultsModule ON Results(Module);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements(driverName string) error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(SysClkFreq) VALUES (?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare(`INSERT INTO Results(RunID, Seq, Name, Module, DataWidth, Length, Random, PortWidth, GeneratorTicks, CheckerErrors, CheckerTicks, Output)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	db.countRuns, err = db.sql.Prepare("SELECT COUNT(*) FROM Runs")
	if err != nil {
		return err
	}
	db.listResults, err = db.sql.Prepare(`SELECT r.Name, r.Module, r.DataWidth, r.Length, r.Random, r.PortWidth, r.Output, u.SysClkFreq
		FROM Results r JOIN Runs u ON r.RunID = u.RunID
		WHERE r.RunID = ? ORDER BY r.Seq`)
	if err != nil {
		return err
	}
	return nil
}

// A Run is a set of results that share a run ID, typically one
// invocation of the benchmark suite.
type Run struct {
	// ID is the public name of the run.
	ID string

	// id is the numeric value used as the primary key.
	id int64
	// seq is the index of the next result to insert.
	seq int64
	// db is the underlying database that this run is going to.
	db *DB
}

// NewRun returns a run for storing results measured at a system
// clock of sysClkFreq Hz. All results inserted into the Run share
// its run ID.
func (db *DB) NewRun(ctx context.Context, sysClkFreq float64) (*Run, error) {
	res, err := db.insertRun.ExecContext(ctx, sysClkFreq)
	if err != nil {
		return nil, err
	}
	i, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &Run{
		ID: strconv.FormatInt(i, 10),
		id: i,
		db: db,
	}, nil
}

// InsertResult stores a single named result in an existing run.
func (run *Run) InsertResult(ctx context.Context, name string, r *benchresult.Result) (err error) {
	tx, err := run.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	cfg := r.Config()
	_, err = tx.StmtContext(ctx, run.db.insertResult).ExecContext(ctx,
		run.id, run.seq, name,
		cfg.Module, cfg.DataWidth, cfg.Length, cfg.Random,
		r.Geometry().DataWidth,
		r.GeneratorTicks(), r.CheckerErrors(), r.CheckerTicks(),
		[]byte(r.Output()))
	if err != nil {
		return err
	}
	run.seq++
	return nil
}

// A Stored is a result read back from the database.
type Stored struct {
	Name   string
	Result *benchresult.Result
}

// ListResults returns the results of the run with ID runID in the
// order they were inserted. The counters are extracted again from the
// stored benchmark output.
func (db *DB) ListResults(ctx context.Context, runID string) ([]Stored, error) {
	id, err := strconv.ParseInt(runID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad run ID %q", runID)
	}
	rows, err := db.listResults.QueryContext(ctx, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Stored
	for rows.Next() {
		var (
			name   string
			cfg    benchconf.Config
			geom   sdram.Geometry
			output []byte
		)
		if err := rows.Scan(&name, &cfg.Module, &cfg.DataWidth, &cfg.Length, &cfg.Random, &geom.DataWidth, &output, &geom.ClkFreq); err != nil {
			return nil, err
		}
		r, err := benchresult.Parse(cfg, string(output), geom)
		if err != nil {
			return nil, fmt.Errorf("run %s, result %s: %w", runID, name, err)
		}
		out = append(out, Stored{Name: name, Result: r})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("run %s: no results", runID)
	}
	return out, nil
}

// CountRuns returns the number of runs in the database.
func (db *DB) CountRuns() (int, error) {
	var n int
	err := db.countRuns.QueryRow().Scan(&n)
	return n, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertRun, db.insertResult, db.countRuns, db.listResults} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
