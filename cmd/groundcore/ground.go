package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groundCmd = &cobra.Command{
	Use:   "ground <description.json>",
	Short: "Ground a lifted description to a fixed point and print counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, snap, err := groundFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("ground atoms:   %d\n", len(snap.GroundAtoms))
		fmt.Printf("ground actions: %d\n", len(snap.GroundActions))
		fmt.Printf("ground axioms:  %d\n", len(snap.GroundAxioms))
		return nil
	},
}
