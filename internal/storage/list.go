package storage

import (
	"database/sql"
	"time"

	"github.com/vuetools/v0vet/internal/issue"
)

// ListRuns returns a lightweight list of runs with counts.
func (db *DB) ListRuns(limit, offset int) ([]RunRow, error) {
	const q = `
		SELECT r.id, r.started_at, r.root, r.version,
		       (SELECT COUNT(1) FROM issues i WHERE i.run_id = r.id) AS issues
		  FROM runs r
		 ORDER BY r.started_at DESC, r.id DESC
		 LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var rr RunRow
		var startedAtStr string
		if err := rows.Scan(&rr.ID, &startedAtStr, &rr.Root, &rr.Version, &rr.Issues); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, startedAtStr); err == nil {
			rr.StartedAt = t
		} else if t2, err2 := time.Parse(time.RFC3339, startedAtStr); err2 == nil {
			rr.StartedAt = t2
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// ListIssues returns a run's issues at or above a minimum severity, in
// discovery order. Empty minSeverity means everything.
func (db *DB) ListIssues(runID, minSeverity string) ([]issue.Issue, error) {
	const q = `
		SELECT file, line, category, severity, message, suggestion, code
		  FROM issues
		 WHERE run_id = ?
		   AND (CASE severity WHEN 'error' THEN 3 WHEN 'warning' THEN 2 ELSE 1 END)
		       >= (CASE ? WHEN 'error' THEN 3 WHEN 'warning' THEN 2 ELSE 1 END)
		 ORDER BY seq`
	rows, err := db.conn.Query(q, runID, minSeverity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []issue.Issue
	for rows.Next() {
		var is issue.Issue
		var suggestion, code sql.NullString
		if err := rows.Scan(&is.File, &is.Line, &is.Category, &is.Severity, &is.Message, &suggestion, &code); err != nil {
			return nil, err
		}
		is.Suggestion = suggestion.String
		is.Code = code.String
		out = append(out, is)
	}
	return out, rows.Err()
}

// HasRun reports whether a run exists.
func (db *DB) HasRun(id string) (bool, error) {
	const q = `SELECT 1 FROM runs WHERE id = ? LIMIT 1`
	var one int
	err := db.conn.QueryRow(q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}
