package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"griddle/internal/config"
	"griddle/internal/logging"
	"griddle/internal/telemetry"
	"griddle/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultItemCount is how many numbered tiles are shown when neither the
// config file nor the arguments name any items.
const defaultItemCount = 12

// options holds the parsed flags shared by every subcommand.
type options struct {
	configPath     string
	columns        int
	visibleColumns int
	visibleRows    int
	tileWidth      int
	tileHeight     int
	watch          bool
	verbose        bool
	logPath        string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "griddle [items...]",
		Short: "Navigate items laid out as a tile grid",
		Long: `griddle arranges items into a grid with a fixed number of columns and
shows a window of it in the terminal. Arrow keys or h/j/k/l move between
tiles; a numeric prefix moves several tiles at once; SPC opens more commands.

Items come from the arguments, or from the "items" list of --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), opts, cfg)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML file with columns, sizes and items")
	f.IntVar(&opts.columns, "cols", 4, "number of columns (0 puts every item in one row)")
	f.IntVar(&opts.visibleColumns, "visible-cols", 3, "columns shown at once")
	f.IntVar(&opts.visibleRows, "visible-rows", 2, "rows shown at once")
	f.IntVar(&opts.tileWidth, "tile-width", config.DefaultTileWidth, "tile width in cells, border included")
	f.IntVar(&opts.tileHeight, "tile-height", config.DefaultTileHeight, "tile height in cells, border included")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload items when --config changes")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	cmd.Flags().StringVar(&opts.logPath, "log-file", "", "append JSON logs to this file")

	cmd.AddCommand(newLayoutCmd(opts))
	return cmd
}

// resolve builds the effective config. Without --config every flag value
// applies; with it, only flags set on the command line override the file.
// Arguments replace the item list.
func (o *options) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	flags := cmd.Flags()
	override := func(name string) bool {
		return o.configPath == "" || flags.Changed(name)
	}

	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if override("cols") {
		cfg.Columns = o.columns
	}
	if override("visible-cols") {
		cfg.VisibleColumns = o.visibleColumns
	}
	if override("visible-rows") {
		cfg.VisibleRows = o.visibleRows
	}
	if override("tile-width") {
		cfg.TileWidth = o.tileWidth
	}
	if override("tile-height") {
		cfg.TileHeight = o.tileHeight
	}
	if len(args) > 0 {
		cfg.Items = args
	}
	if len(cfg.Items) == 0 {
		for i := 1; i <= defaultItemCount; i++ {
			cfg.Items = append(cfg.Items, strconv.Itoa(i))
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runInteractive(ctx context.Context, opts *options, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger, err := logging.New(logging.Options{Path: opts.logPath, Verbose: opts.verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.New(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	view, err := ui.NewGridView(ui.GridOptions{
		Items:          cfg.Items,
		Columns:        cfg.Columns,
		VisibleColumns: cfg.VisibleColumns,
		VisibleRows:    cfg.VisibleRows,
		TileWidth:      cfg.TileWidth,
		TileHeight:     cfg.TileHeight,
		Logger:         logger,
		Tracer:         tp.Tracer(),
	})
	if err != nil {
		return err
	}

	app := ui.NewAppModel(view, opts.configPath, logger)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.watch && opts.configPath != "" {
		go func() {
			err := config.Watch(ctx, opts.configPath, logger, func(c config.Config) {
				p.Send(ui.ItemsReloadedMsg{Items: c.Items, Columns: c.Columns})
			})
			if err != nil {
				logger.Warn("config watch stopped", zap.Error(err))
			}
		}()
	}

	logger.Info("starting",
		zap.Int("items", len(cfg.Items)),
		zap.Int("columns", cfg.Columns),
		zap.Bool("watch", opts.watch))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
