package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/collateral/market"
	"gopkg.in/yaml.v3"
)

// Config describes one collateral computation environment: the haircut
// parameter, the trade ledger location, and the instrument groups with
// their market totals snapshot.
type Config struct {
	HaircutBps uint64        `json:"haircut_bps" yaml:"haircut_bps"`
	Ledger     LedgerConfig  `json:"ledger" yaml:"ledger"`
	Groups     []GroupConfig `json:"groups" yaml:"groups"`
}

// LedgerConfig locates the SQLite trade ledger.
type LedgerConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// GroupConfig declares one instrument group and the per-maturity market
// totals its oracle serves. Totals are a snapshot: the computation reads
// them as-of one logical instant.
type GroupConfig struct {
	ID         uint8            `json:"id" yaml:"id"`
	Currency   string           `json:"currency" yaml:"currency"`
	PeriodSize uint32           `json:"period_size" yaml:"period_size"`
	NumPeriods uint32           `json:"num_periods" yaml:"num_periods"`
	Maturities []MaturityTotals `json:"maturities" yaml:"maturities"`
}

// MaturityTotals is one maturity's market snapshot.
type MaturityTotals struct {
	Maturity   uint64 `json:"maturity" yaml:"maturity"`
	FutureCash uint64 `json:"future_cash" yaml:"future_cash"`
	Liquidity  uint64 `json:"liquidity" yaml:"liquidity"`
	Collateral uint64 `json:"collateral" yaml:"collateral"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.HaircutBps == 0 {
		return fmt.Errorf("haircut_bps must be positive")
	}
	if c.Ledger.DBPath == "" {
		return fmt.Errorf("ledger.db_path is required")
	}
	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one instrument group is required")
	}
	seen := map[uint8]bool{}
	for _, g := range c.Groups {
		if seen[g.ID] {
			return fmt.Errorf("duplicate group id %d", g.ID)
		}
		seen[g.ID] = true
		if g.Currency == "" {
			return fmt.Errorf("group %d: currency is required", g.ID)
		}
		if g.PeriodSize == 0 {
			return fmt.Errorf("group %d: period_size must be positive", g.ID)
		}
		if g.NumPeriods == 0 {
			return fmt.Errorf("group %d: num_periods must be positive", g.ID)
		}
		mseen := map[uint64]bool{}
		for _, m := range g.Maturities {
			if mseen[m.Maturity] {
				return fmt.Errorf("group %d: duplicate maturity %d", g.ID, m.Maturity)
			}
			mseen[m.Maturity] = true
		}
	}
	return nil
}

// Market materializes the static directory and per-group oracles from the
// configured snapshot.
func (c *Config) Market() (*market.StaticDirectory, error) {
	groups := make([]market.InstrumentGroup, 0, len(c.Groups))
	for _, g := range c.Groups {
		totals := make(map[uint64]market.MarketTotals, len(g.Maturities))
		for _, m := range g.Maturities {
			totals[m.Maturity] = market.MarketTotals{
				FutureCash: m.FutureCash,
				Liquidity:  m.Liquidity,
				Collateral: m.Collateral,
			}
		}
		groups = append(groups, market.InstrumentGroup{
			ID:         g.ID,
			Currency:   g.Currency,
			PeriodSize: g.PeriodSize,
			NumPeriods: g.NumPeriods,
			Oracle:     market.NewStaticOracle(totals),
		})
	}
	return market.NewStaticDirectory(groups)
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		HaircutBps: 11_000, // 110%: shortfalls over-collateralized by 10%
		Ledger: LedgerConfig{
			DBPath: "./collateral.sqlite",
		},
		Groups: []GroupConfig{
			{
				ID:         1,
				Currency:   "USD",
				PeriodSize: 40_320, // ~1 week of blocks
				NumPeriods: 52,
				Maturities: []MaturityTotals{
					{Maturity: 1_340_320, FutureCash: 2_000_000, Liquidity: 500_000, Collateral: 1_000_000},
				},
			},
		},
	}
}
