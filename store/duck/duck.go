// Package duck journals host parameter changes in DuckDB.
package duck

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	nt "exgain/entity"
)

// Duck is a parameter change journal.
type Duck struct {
	db     *sql.DB
	logger nt.Logger
	path   string
}

// New opens a journal at path, in memory when path is empty.
// The caller must import the duckdb driver.
func New(ctx context.Context, path string, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open duck at %q", path)
		return
	}

	err = createSchema(ctx, db)
	if err != nil {
		db.Close()
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
		path:   path,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the journal's location.
func (dk *Duck) Name() string {
	if dk.path == "" {
		return "memory"
	}
	return dk.path
}

// Record appends a change.
func (dk *Duck) Record(ctx context.Context, change nt.Change) (err error) {

	_, err = dk.db.ExecContext(ctx, `
		INSERT INTO changes (session, param, plain, normalized, text, at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, change.Session, change.Param, change.Plain, change.Normalized, change.Text, change.At)
	err = errors.Wrapf(err, "failed to record %s change", change.Param)
	return
}

// Recent returns up to limit changes, newest first.
func (dk *Duck) Recent(ctx context.Context, limit int) (changes []nt.Change, err error) {

	return dk.query(ctx, `
		SELECT session, param, plain, normalized, text, at
		FROM changes
		ORDER BY id DESC
		LIMIT ?
	`, limit)
}

// Latest returns the most recent change of each param.
func (dk *Duck) Latest(ctx context.Context) (changes []nt.Change, err error) {

	return dk.query(ctx, `
		SELECT session, param, plain, normalized, text, at
		FROM changes
		QUALIFY row_number() OVER (PARTITION BY param ORDER BY id DESC) = 1
		ORDER BY param
	`)
}

// unexported

func createSchema(ctx context.Context, db *sql.DB) (err error) {

	_, err = db.ExecContext(ctx, "CREATE SEQUENCE IF NOT EXISTS changes_id")
	if err != nil {
		err = errors.Wrapf(err, "failed to create sequence")
		return
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS changes (
			id BIGINT PRIMARY KEY DEFAULT nextval('changes_id'),
			session VARCHAR NOT NULL,
			param VARCHAR NOT NULL,
			plain DOUBLE NOT NULL,
			normalized DOUBLE NOT NULL,
			text VARCHAR,
			at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to create table")
		return
	}

	_, err = db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_param ON changes(param)")
	err = errors.Wrapf(err, "failed to create index")
	return
}

func (dk *Duck) query(ctx context.Context, query string, args ...any) (changes []nt.Change, err error) {

	rows, err := dk.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to query changes")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var change nt.Change
		var text sql.NullString
		err = rows.Scan(&change.Session, &change.Param, &change.Plain, &change.Normalized, &text, &change.At)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan change")
			return
		}
		change.Text = text.String
		changes = append(changes, change)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}
