// ledger/query.go
package ledger

import (
	"database/sql"
	"fmt"
)

// Run returns a single recorded run with its requirement records.
func (l *SQLite) Run(runID string) (Run, error) {
	var r Run

	row := l.db.QueryRow(`
		SELECT run_id, account, block, haircut_bps, created
		FROM runs
		WHERE run_id = ?`, runID)

	var block, haircut int64
	err := row.Scan(&r.RunID, &r.Account, &block, &haircut, &r.Created)
	if err != nil {
		if err == sql.ErrNoRows {
			return Run{}, fmt.Errorf("run %q not found", runID)
		}
		return Run{}, err
	}
	r.Block = uint64(block)
	r.HaircutBps = uint64(haircut)

	rows, err := l.db.Query(`
		SELECT currency, npv, requirement, ladder
		FROM requirements
		WHERE run_id = ?
		ORDER BY currency ASC`, runID)
	if err != nil {
		return Run{}, err
	}
	defer rows.Close()

	r.Requirements, err = scanRequirements(rows)
	if err != nil {
		return Run{}, err
	}
	return r, nil
}

// ListRuns returns an account's runs, newest first, without their
// requirement rows (fetch those with Run).
func (l *SQLite) ListRuns(account string) ([]Run, error) {
	rows, err := l.db.Query(`
		SELECT run_id, account, block, haircut_bps, created
		FROM runs
		WHERE account = ?
		ORDER BY run_id DESC`, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var block, haircut int64
		if err := rows.Scan(&r.RunID, &r.Account, &block, &haircut, &r.Created); err != nil {
			return nil, err
		}
		r.Block = uint64(block)
		r.HaircutBps = uint64(haircut)
		out = append(out, r)
	}
	return out, rows.Err()
}
