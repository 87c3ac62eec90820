// Command recipebook is an interactive recipe catalog.
//
// Usage:
//
//	recipebook [--demo] [--verbose] [--quiet] [--config recipebook.yaml]
//	recipebook names
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebook/internal/config"
	"github.com/hammamikhairi/recipebook/internal/conversation"
	"github.com/hammamikhairi/recipebook/internal/display"
	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "recipebook",
		Short:         "Keep recipes, scale them, and watch their calories",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgPath)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg)
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file (default ./"+config.DefaultFile+" if present)")

	root.AddCommand(newNamesCmd())
	return root
}

// newNamesCmd prints the sample catalog's names in sorted order.
func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Print the sample recipe names in sorted order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := recipe.NewManager(logger.New(logger.LevelOff, io.Discard))
			if err := recipe.SeedDemo(m); err != nil {
				return fmt.Errorf("seeding sample recipes: %w", err)
			}
			for _, name := range m.ListRecipeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func runInteractive(ctx context.Context, cfg config.Config) error {
	logOut, closeLog := openLogOutput(cfg.LogFile)
	defer closeLog()

	log := logger.New(cfg.LogLevel(), logOut)
	defer log.Sync()

	if cfg.File != "" {
		log.Info("config loaded from %s", cfg.File)
	}

	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Wire dependencies.
	manager := recipe.NewManager(log)
	if cfg.Demo {
		if err := recipe.SeedDemo(manager); err != nil {
			return fmt.Errorf("seeding sample recipes: %w", err)
		}
		log.Info("seeded %d sample recipes", manager.Len())
	}

	ui := display.NewUI(manager)
	notifier := conversation.NewCLINotifier(log, ui.PrintChat, ui.PrintUrgent)
	eng := engine.New(manager, log,
		engine.WithNotifier(notifier),
		engine.WithThresholdAlerts(cfg.ThresholdAlerts),
	)
	defer eng.Close()

	app := &cliApp{
		engine:   eng,
		parser:   conversation.NewKeywordParser(log),
		notifier: notifier,
		log:      log,
		ui:       ui,
	}

	if !cfg.NoBanner {
		fmt.Println(display.RenderBanner())
	}
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		return err
	}
	return nil
}

// openLogOutput opens path for appending, creating its directory.
// "stderr" or an empty path logs to the console; an unopenable file
// falls back to stderr with a warning.
func openLogOutput(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}
