package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Full(t *testing.T) {
	cfg, err := Parse([]byte(`
columns: 3
visible_columns: 2
visible_rows: 2
tile_width: 20
tile_height: 5
items: [alpha, beta, gamma]
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Columns:        3,
		VisibleColumns: 2,
		VisibleRows:    2,
		TileWidth:      20,
		TileHeight:     5,
		Items:          []string{"alpha", "beta", "gamma"},
	}, cfg)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("items: [a]\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Columns)
	assert.Equal(t, 1, cfg.VisibleColumns)
	assert.Equal(t, 1, cfg.VisibleRows)
	assert.Equal(t, DefaultTileWidth, cfg.TileWidth)
	assert.Equal(t, DefaultTileHeight, cfg.TileHeight)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("columns: -1\nvisible_rows: -2\ntile_width: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns must be >= 0")
	assert.Contains(t, err.Error(), "visible_rows must be >= 1")
	assert.Contains(t, err.Error(), "tile_width must be >= 3")

	_, err = Parse([]byte("columns: [oops"))
	assert.ErrorContains(t, err, "parse yaml")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: 2\nitems: [x, y]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Columns)
	assert.Equal(t, []string{"x", "y"}, cfg.Items)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: [a]\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(c Config) {
			select {
			case got <- c:
			default:
			}
		})
	}()

	// Keep rewriting until the watcher is registered and reports a change.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-got:
			// A write can be observed after truncation but before the data lands.
			if len(cfg.Items) != 2 {
				continue
			}
			assert.Equal(t, []string{"a", "b"}, cfg.Items)
			cancel()
			require.NoError(t, <-done)
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("items: [a, b]\n"), 0o644))
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
