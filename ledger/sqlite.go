// ledger/sqlite.go
package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/collateral/market"
	"github.com/rustyeddy/collateral/portfolio"
)

type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if necessary) a ledger database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (l *SQLite) AddTrade(account string, t portfolio.Trade) error {
	if account == "" {
		return fmt.Errorf("account is required")
	}
	if !t.SwapType.Valid() {
		return fmt.Errorf("swap type %d outside tag set", uint8(t.SwapType))
	}

	id := portfolio.EncodeTokenID(t.TradeKey)
	_, err := l.db.Exec(`
		INSERT INTO trades
		(account, token_id, group_id, instrument_id, swap_type, start_block, duration, notional)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		account, id.String(), t.GroupID, t.InstrumentID, uint8(t.SwapType),
		t.StartBlock, t.Duration, int64(t.Notional),
	)
	if err != nil {
		return fmt.Errorf("add trade %s: %w", id, err)
	}

	log.Debug().Str("account", account).Str("token_id", id.String()).
		Str("swap", t.SwapType.String()).Msg("trade added")
	return nil
}

func (l *SQLite) RemoveTrade(account string, id portfolio.TokenID) error {
	res, err := l.db.Exec(`DELETE FROM trades WHERE account = ? AND token_id = ?`,
		account, id.String())
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("trade %s not held by account %q", id, account)
	}
	return nil
}

func (l *SQLite) Trades(account string) ([]portfolio.Trade, error) {
	rows, err := l.db.Query(`
		SELECT token_id, notional
		FROM trades
		WHERE account = ?
		ORDER BY token_id ASC`, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []portfolio.Trade
	for rows.Next() {
		var idStr string
		var notional int64
		if err := rows.Scan(&idStr, &notional); err != nil {
			return nil, err
		}
		id, err := portfolio.ParseTokenID(idStr)
		if err != nil {
			return nil, fmt.Errorf("ledger row: %w", err)
		}
		// The token id is authoritative for the attribute columns.
		key, err := portfolio.DecodeTokenID(id)
		if err != nil {
			return nil, fmt.Errorf("ledger row: %w", err)
		}
		out = append(out, portfolio.Trade{TradeKey: key, Notional: uint64(notional)})
	}
	return out, rows.Err()
}

func (l *SQLite) Accounts() ([]string, error) {
	rows, err := l.db.Query(`SELECT DISTINCT account FROM trades ORDER BY account ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (l *SQLite) RecordRun(r Run) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, account, block, haircut_bps, created)
		VALUES (?, ?, ?, ?, ?)`,
		r.RunID, r.Account, int64(r.Block), int64(r.HaircutBps), r.Created,
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", r.RunID, err)
	}

	for _, rec := range r.Requirements {
		ladder, err := json.Marshal(rec.Ladder)
		if err != nil {
			return fmt.Errorf("record run %s: %w", r.RunID, err)
		}
		_, err = tx.Exec(`
			INSERT INTO requirements (run_id, currency, npv, requirement, ladder)
			VALUES (?, ?, ?, ?, ?)`,
			r.RunID, rec.Currency, int64(rec.NPV), int64(rec.Requirement), string(ladder),
		)
		if err != nil {
			return fmt.Errorf("record run %s: %w", r.RunID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Debug().Str("run_id", r.RunID).Str("account", r.Account).
		Int("currencies", len(r.Requirements)).Msg("run recorded")
	return nil
}

func (l *SQLite) Close() error {
	return l.db.Close()
}

func scanRequirements(rows *sql.Rows) ([]RequirementRecord, error) {
	var out []RequirementRecord
	for rows.Next() {
		var rec RequirementRecord
		var npv, req int64
		var ladder string
		if err := rows.Scan(&rec.Currency, &npv, &req, &ladder); err != nil {
			return nil, err
		}
		rec.NPV = market.Amount(npv)
		rec.Requirement = uint64(req)
		if err := json.Unmarshal([]byte(ladder), &rec.Ladder); err != nil {
			return nil, fmt.Errorf("requirement ladder: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
