package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomca",
		Short: "atom-ca - bit-packed cellular automaton engine",
		Long: `atomca runs predator-prey worlds built on bit-packed atoms and
event-window physics. Use "run" for headless simulation and snapshots,
or "view" for the interactive window (requires the ebiten build tag).`,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newViewCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
