package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/heapviz/internal/config"
	"github.com/vkngwrapper/heapviz/internal/logger"
)

var (
	configPath string
	debugMode  bool
	dumpPath   string
	svgPath    string
)

var rootCmd = &cobra.Command{
	Use:   "heapviz",
	Short: "Interactive visualization of a simple heap allocator",
	Long: `heapviz draws a simulated heap as a strip of blocks in the terminal.

Drag the SBRK handle to the right to grow the heap, then click a block to
allocate, free, split or coalesce it. Rejected operations are explained in
the message bar and never change the heap.

Example:
  heapviz
  heapviz --config heapviz.toml --debug
  heapviz --dump layout.json --svg layout.svg`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML configuration file")
	rootCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging to ~/.heapviz/logs/")
	rootCmd.Flags().StringVar(&dumpPath, "dump", "", "Write the final heap layout as JSON to this file on exit")
	rootCmd.Flags().StringVar(&svgPath, "svg", "", "Write an SVG snapshot of the final heap to this file on exit")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled || debugMode,
		Dir:     cfg.Log.Dir,
		Level:   level,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	defer func() { _ = logger.Close() }()

	logger.L.Info("starting heapviz", "capacity", cfg.Heap.Capacity, "bytesPerCell", cfg.Display.BytesPerCell)

	p := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		logger.L.Error("TUI error", "error", err)
		return errors.Wrap(err, "error running TUI")
	}

	model, ok := finalModel.(Model)
	if !ok {
		return errors.Newf("unexpected final model %T", finalModel)
	}

	if err := writeExports(model, dumpPath, svgPath); err != nil {
		logger.L.Error("export failed", "error", err)
		return err
	}

	logger.L.Info("heapviz exited normally")
	return nil
}
