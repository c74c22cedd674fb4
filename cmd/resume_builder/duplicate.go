package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Duplicate a saved resume",
	Long:  "Creates a deep copy of the record with a new id, a copy-marked title and fresh timestamps. The original is untouched.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicate,
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

func runDuplicate(_ *cobra.Command, args []string) error {
	_, st, _, err := openStore()
	if err != nil {
		return err
	}

	dup, err := st.Duplicate(args[0])
	if err != nil {
		return fmt.Errorf("duplicate failed: %w", err)
	}
	fmt.Printf("Created %q as %s\n", dup.Title, dup.ID)
	return nil
}
