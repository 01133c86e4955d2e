// ledger/csv.go
//
// Portfolio snapshots move between research environments as CSV files,
// optionally xz-compressed. Columns:
//
//	group_id,instrument_id,swap_type,start_block,duration,notional
//
// swap_type uses the short names printed by portfolio.SwapType.String.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz"

	"github.com/rustyeddy/collateral/portfolio"
)

var csvHeader = []string{"group_id", "instrument_id", "swap_type", "start_block", "duration", "notional"}

// ImportCSV loads a portfolio snapshot into an account. Files ending in
// .xz are decompressed transparently. Returns the number of trades added;
// the import stops at the first bad row.
func ImportCSV(l Ledger, account, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		src, err = xz.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("open snapshot: %w", err)
		}
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = len(csvHeader)

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read snapshot header: %w", err)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return 0, fmt.Errorf("snapshot header: want %q at column %d, got %q", col, i, header[i])
		}
	}

	n := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("snapshot row %d: %w", n+1, err)
		}
		t, err := parseTradeRow(row)
		if err != nil {
			return n, fmt.Errorf("snapshot row %d: %w", n+1, err)
		}
		if err := l.AddTrade(account, t); err != nil {
			return n, fmt.Errorf("snapshot row %d: %w", n+1, err)
		}
		n++
	}

	log.Info().Str("account", account).Str("path", path).Int("trades", n).
		Msg("portfolio snapshot imported")
	return n, nil
}

// ExportCSV writes an account's trades as a plain CSV snapshot.
func ExportCSV(l Ledger, account string, w io.Writer) error {
	trades, err := l.Trades(account)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		row := []string{
			strconv.FormatUint(uint64(t.GroupID), 10),
			strconv.FormatUint(uint64(t.InstrumentID), 10),
			t.SwapType.String(),
			strconv.FormatUint(uint64(t.StartBlock), 10),
			strconv.FormatUint(uint64(t.Duration), 10),
			strconv.FormatUint(t.Notional, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseTradeRow(row []string) (portfolio.Trade, error) {
	group, err := strconv.ParseUint(row[0], 10, 8)
	if err != nil {
		return portfolio.Trade{}, fmt.Errorf("group_id: %w", err)
	}
	instr, err := strconv.ParseUint(row[1], 10, 16)
	if err != nil {
		return portfolio.Trade{}, fmt.Errorf("instrument_id: %w", err)
	}
	swap, err := portfolio.ParseSwapType(row[2])
	if err != nil {
		return portfolio.Trade{}, err
	}
	start, err := strconv.ParseUint(row[3], 10, 32)
	if err != nil {
		return portfolio.Trade{}, fmt.Errorf("start_block: %w", err)
	}
	dur, err := strconv.ParseUint(row[4], 10, 32)
	if err != nil {
		return portfolio.Trade{}, fmt.Errorf("duration: %w", err)
	}
	notional, err := strconv.ParseUint(row[5], 10, 64)
	if err != nil {
		return portfolio.Trade{}, fmt.Errorf("notional: %w", err)
	}

	return portfolio.Trade{
		TradeKey: portfolio.TradeKey{
			GroupID:      uint8(group),
			InstrumentID: uint16(instr),
			StartBlock:   uint32(start),
			Duration:     uint32(dur),
			SwapType:     swap,
		},
		Notional: notional,
	}, nil
}
