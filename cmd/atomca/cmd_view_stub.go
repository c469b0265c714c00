//go:build !ebiten

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive world window (requires the ebiten build tag)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("this binary was built without GUI support; rebuild with `-tags ebiten`")
		},
	}
}
