package main

import (
	"fmt"
	"strconv"

	"griddle/internal/grid"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newLayoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout [items...]",
		Short: "Print every tile's coordinates and neighbors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			g, err := grid.New(cfg.Items, grid.Options{Columns: cfg.Columns})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderLayout(g))
			return err
		},
	}
}

// renderLayout tabulates index, item, coordinate and adjacency per tile.
func renderLayout(g *grid.Grid[string]) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("index", "item", "x", "y", "left", "right", "up", "down")
	for _, tile := range g.Tiles() {
		adj := tile.Adjacency()
		t.Row(
			strconv.Itoa(tile.Index()),
			tile.Data(),
			strconv.Itoa(tile.X()),
			strconv.Itoa(tile.Y()),
			adj.Left.String(),
			adj.Right.String(),
			adj.Up.String(),
			adj.Down.String(),
		)
	}
	return t.String()
}
