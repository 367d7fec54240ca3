package recorder

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/notargets/quasi1d/types"
)

const historyTable = "residual_history"

/*
SQLiteRecorder buffers history entries and writes them in batches, one transaction per batch. Every run gets a
unique RunID so several runs can share one database file. Buffered entries are flushed on Close and at exit.
*/
type SQLiteRecorder struct {
	*sql.DB
	RunID     string
	dbName    string
	batchSize int
	entries   []Entry
	closed    bool
}

// NewSQLiteRecorder opens or creates the database file. An empty path creates a uniquely named file
func NewSQLiteRecorder(path string) (r *SQLiteRecorder, err error) {
	r = &SQLiteRecorder{
		dbName:    path,
		RunID:     xid.New().String(),
		batchSize: 1000,
	}
	if r.dbName == "" {
		r.dbName = "quasi1d_history_" + r.RunID + ".sqlite3"
		if _, err = os.Stat(r.dbName); err == nil {
			return nil, fmt.Errorf("file %s already exists", r.dbName)
		}
	}
	if r.DB, err = sql.Open("sqlite3", r.dbName); err != nil {
		return nil, err
	}
	_, err = r.Exec(`CREATE TABLE IF NOT EXISTS ` + historyTable + ` (
	run_id TEXT,
	iteration INTEGER,
	mass REAL,
	momentum REAL,
	energy REAL
);`)
	if err != nil {
		_ = r.DB.Close()
		return nil, fmt.Errorf("creating table %s in %s: %w", historyTable, r.dbName, err)
	}
	atexit.Register(func() { _ = r.Flush() })
	return
}

func (r *SQLiteRecorder) Name() string { return r.dbName }

func (r *SQLiteRecorder) Record(iteration int, norm types.Triple) error {
	if r.closed {
		return fmt.Errorf("recorder for %s is closed", r.dbName)
	}
	r.entries = append(r.entries, Entry{RunID: r.RunID, Iteration: iteration, Norm: norm})
	if len(r.entries) >= r.batchSize {
		return r.Flush()
	}
	return nil
}

func (r *SQLiteRecorder) Flush() (err error) {
	var (
		tx   *sql.Tx
		stmt *sql.Stmt
	)
	if r.closed || len(r.entries) == 0 {
		return
	}
	if tx, err = r.Begin(); err != nil {
		return
	}
	if stmt, err = tx.Prepare("INSERT INTO " + historyTable + " VALUES (?, ?, ?, ?, ?)"); err != nil {
		_ = tx.Rollback()
		return
	}
	defer stmt.Close()
	for _, e := range r.entries {
		if _, err = stmt.Exec(e.RunID, e.Iteration, e.Norm[0], e.Norm[1], e.Norm[2]); err != nil {
			_ = tx.Rollback()
			return
		}
	}
	if err = tx.Commit(); err != nil {
		return
	}
	r.entries = nil
	return
}

func (r *SQLiteRecorder) Close() (err error) {
	if r.closed {
		return
	}
	err = r.Flush()
	r.closed = true
	if cerr := r.DB.Close(); err == nil {
		err = cerr
	}
	return
}

// History reads back the flushed entries of this run in iteration order
func (r *SQLiteRecorder) History() (entries []Entry, err error) {
	return ReadSQLite(r.DB, r.RunID)
}

// ReadSQLite reads the entries of one run from an open history database
func ReadSQLite(db *sql.DB, runID string) (entries []Entry, err error) {
	var (
		rows *sql.Rows
	)
	rows, err = db.Query("SELECT run_id, iteration, mass, momentum, energy FROM "+historyTable+
		" WHERE run_id = ? ORDER BY iteration", runID)
	if err != nil {
		return
	}
	defer rows.Close()
	for rows.Next() {
		var e Entry
		if err = rows.Scan(&e.RunID, &e.Iteration, &e.Norm[0], &e.Norm[1], &e.Norm[2]); err != nil {
			return
		}
		entries = append(entries, e)
	}
	err = rows.Err()
	return
}
