// Package config loads griddle settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default tile size in terminal cells.
const (
	DefaultTileWidth  = 16
	DefaultTileHeight = 3
)

// Config is the on-disk shape of a griddle file.
type Config struct {
	Columns        int      `yaml:"columns"`
	VisibleColumns int      `yaml:"visible_columns"`
	VisibleRows    int      `yaml:"visible_rows"`
	TileWidth      int      `yaml:"tile_width"`
	TileHeight     int      `yaml:"tile_height"`
	Items          []string `yaml:"items"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		VisibleColumns: 1,
		VisibleRows:    1,
		TileWidth:      DefaultTileWidth,
		TileHeight:     DefaultTileHeight,
	}
}

// Load reads path and fills unset fields from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.VisibleColumns == 0 {
		c.VisibleColumns = d.VisibleColumns
	}
	if c.VisibleRows == 0 {
		c.VisibleRows = d.VisibleRows
	}
	if c.TileWidth == 0 {
		c.TileWidth = d.TileWidth
	}
	if c.TileHeight == 0 {
		c.TileHeight = d.TileHeight
	}
}

// Validate reports every field out of bounds.
func (c Config) Validate() error {
	var errs []error
	if c.Columns < 0 {
		errs = append(errs, fmt.Errorf("columns must be >= 0, got %d", c.Columns))
	}
	if c.VisibleColumns < 1 {
		errs = append(errs, fmt.Errorf("visible_columns must be >= 1, got %d", c.VisibleColumns))
	}
	if c.VisibleRows < 1 {
		errs = append(errs, fmt.Errorf("visible_rows must be >= 1, got %d", c.VisibleRows))
	}
	// Room for a border on each side plus one label cell.
	if c.TileWidth < 3 {
		errs = append(errs, fmt.Errorf("tile_width must be >= 3, got %d", c.TileWidth))
	}
	if c.TileHeight < 3 {
		errs = append(errs, fmt.Errorf("tile_height must be >= 3, got %d", c.TileHeight))
	}
	return errors.Join(errs...)
}
