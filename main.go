// jumpdontdie is a one-button runner: the player runs right on their own and
// must jump over spikes.
//
// Usage:
//
//	jumpdontdie                 - Play
//	jumpdontdie physics         - Open the physics playground
//	jumpdontdie scores [level]  - Show the best runs
//	jumpdontdie levels          - List the available levels
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/logging"
	"github.com/milk9111/jumpdontdie/session"
	"github.com/milk9111/jumpdontdie/storage"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	flagConfig string
	flagDebug  bool
	flagLevel  string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "jumpdontdie",
	Short:        "Jump Don't Die - run, jump, avoid the spikes",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame(session.ModeMenu)
	},
}

var physicsCmd = &cobra.Command{
	Use:   "physics",
	Short: "Open the physics playground",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame(session.ModePhysicsDemo)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging, overlays and level hot reload")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level name in levels/ (.yaml or .tengo, extension optional)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the scores database")

	rootCmd.AddCommand(physicsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig applies the command line flags over the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDebug {
		cfg.Log.Debug = true
	}
	if flagLevel != "" {
		cfg.Game.Level = flagLevel
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

func runGame(start session.Mode) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Init(logging.Options{File: config.ExpandHome(cfg.Log.File), Debug: cfg.Log.Debug}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() {
		err = multierr.Append(err, logging.Sync())
	}()

	store, serr := storage.Open(cfg.Storage.Path)
	if serr != nil {
		// the game is still playable without scores
		logging.Log.Warnw("scores disabled", "err", serr)
		store = nil
	}

	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	game := NewGame(gameOptions{Config: cfg, Store: store, Debug: cfg.Log.Debug, Start: start})
	logging.Log.Infow("starting", "level", cfg.Game.Level, "start", start.String())

	runErr := ebiten.RunGame(game)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	return multierr.Combine(runErr, game.Close())
}
