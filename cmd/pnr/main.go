package main

import (
	"errors"
	"fmt"
	"os"

	"pnrcheck/internal/personnummer"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "pnr",
		Short:        "Swedish personnummer validation",
		SilenceUsage: true,
	}

	validate := &cobra.Command{
		Use:   "validate <number>",
		Short: "Validate a single personnummer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !personnummer.Valid(args[0]) {
				return errors.New("invalid personnummer")
			}
			fmt.Println("valid")
			return nil
		},
	}

	root.AddCommand(validate)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
