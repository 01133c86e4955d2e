package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config { return Default() }

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero_haircut", mutate: func(c *Config) { c.HaircutBps = 0 }},
		{name: "missing_db_path", mutate: func(c *Config) { c.Ledger.DBPath = "" }},
		{name: "no_groups", mutate: func(c *Config) { c.Groups = nil }},
		{name: "duplicate_group", mutate: func(c *Config) { c.Groups = append(c.Groups, c.Groups[0]) }},
		{name: "missing_currency", mutate: func(c *Config) { c.Groups[0].Currency = "" }},
		{name: "zero_period_size", mutate: func(c *Config) { c.Groups[0].PeriodSize = 0 }},
		{name: "zero_num_periods", mutate: func(c *Config) { c.Groups[0].NumPeriods = 0 }},
		{name: "duplicate_maturity", mutate: func(c *Config) {
			c.Groups[0].Maturities = append(c.Groups[0].Maturities, c.Groups[0].Maturities[0])
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, ext := range []string{"yaml", "json"} {
		path := filepath.Join(dir, "collateral."+ext)
		cfg := Default()
		require.NoError(t, cfg.SaveToFile(path))

		loaded, err := LoadFromFile(path)
		require.NoError(t, err, ext)
		assert.Equal(t, cfg, loaded, ext)
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	doc := `
haircut_bps: 12500
ledger:
  db_path: ./test.sqlite
groups:
  - id: 3
    currency: GBP
    period_size: 100
    num_periods: 4
    maturities:
      - maturity: 1250
        future_cash: 2000
        liquidity: 500
        collateral: 1000
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(12500), cfg.HaircutBps)
	require.Len(t, cfg.Groups, 1)
	assert.Equal(t, "GBP", cfg.Groups[0].Currency)

	dirc, err := cfg.Market()
	require.NoError(t, err)

	groups, err := dirc.ResolveGroups([]uint8{3})
	require.NoError(t, err)
	totals, err := groups[0].Oracle.MarketTotals(1250)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), totals.Liquidity)
}

func TestLoadFromFileRejectsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{not config"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
