package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"atom-ca/internal/core"
	"atom-ca/internal/sim"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		steps      int
		seed       int64
		tps        int
		report     int
		outPath    string
		inPath     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the world headless and report populations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			world := sim.NewWithConfig(cfg)
			if inPath != "" {
				world.Reset(seed) // allocate before restoring over the top
				if err := restoreSnapshot(world, inPath); err != nil {
					return err
				}
			} else {
				world.Reset(seed)
			}

			var pacer *core.FixedStep
			if tps > 0 {
				pacer = core.NewFixedStep(tps)
			}

			for step := 1; step <= steps; step++ {
				if pacer != nil {
					for !pacer.ShouldStep() {
						time.Sleep(time.Millisecond)
					}
				}
				world.Step()
				if report > 0 && step%report == 0 {
					empty, fish, shark := world.Counts()
					fmt.Fprintf(cmd.OutOrStdout(), "step %d: empty=%d fish=%d shark=%d\n",
						step, empty, fish, shark)
				}
			}

			empty, fish, shark := world.Counts()
			fmt.Fprintf(cmd.OutOrStdout(), "final: empty=%d fish=%d shark=%d\n", empty, fish, shark)

			if outPath != "" {
				if err := saveSnapshot(world, outPath); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (defaults used when empty)")
	cmd.Flags().IntVar(&steps, "steps", 100, "number of epochs to run")
	cmd.Flags().Int64Var(&seed, "seed", 0, "world seed (0 uses the configured seed)")
	cmd.Flags().IntVar(&tps, "tps", 0, "pace epochs at this rate (0 runs flat out)")
	cmd.Flags().IntVar(&report, "report", 0, "print populations every N epochs (0 disables)")
	cmd.Flags().StringVar(&outPath, "out", "", "write a snapshot here when done")
	cmd.Flags().StringVar(&inPath, "in", "", "restore this snapshot before running")
	return cmd
}

func loadConfig(path string) (sim.Config, error) {
	if path == "" {
		return sim.DefaultConfig(), nil
	}
	cfg, err := sim.LoadConfig(path)
	if err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

func saveSnapshot(world *sim.World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot out: %w", err)
	}
	if err := world.WriteSnapshot(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot out: %w", err)
	}
	log.Printf("snapshot written to %s", path)
	return nil
}

func restoreSnapshot(world *sim.World, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("snapshot in: %w", err)
	}
	defer f.Close()
	return world.ReadSnapshot(f)
}
