//go:build ebiten

package main

import (
	"errors"
	"log"

	"atom-ca/internal/app"
	"atom-ca/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	var (
		configPath string
		seed       int64
		scale      int
		tps        int
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive world window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			world := sim.NewWithConfig(cfg)
			world.Reset(seed)

			game := app.New(world, scale, seed)
			size := world.Size()

			ebiten.SetWindowTitle("atom-ca - " + world.Name())
			ebiten.SetTPS(tps)
			ebiten.SetWindowSize(size.W*scale, size.H*scale)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				log.Fatal(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (defaults used when empty)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "world seed (0 uses the configured seed)")
	cmd.Flags().IntVar(&scale, "scale", 3, "pixels per site")
	cmd.Flags().IntVar(&tps, "tps", 30, "simulation ticks per second")
	return cmd
}
