package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/catalog"
)

var acceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Record an accepted suggestion value",
	Long:  "Moves the value to the front of the category's recently-used list and, if it is not in the static catalog, remembers it as a custom suggestion.",
	RunE:  runAccept,
}

var (
	acceptCategory string
	acceptValue    string
)

func init() {
	acceptCmd.Flags().StringVarP(&acceptCategory, "category", "c", "", "Field category (required)")
	acceptCmd.Flags().StringVar(&acceptValue, "value", "", "Committed value (required)")

	if err := acceptCmd.MarkFlagRequired("category"); err != nil {
		panic(fmt.Sprintf("failed to mark category flag as required: %v", err))
	}
	if err := acceptCmd.MarkFlagRequired("value"); err != nil {
		panic(fmt.Sprintf("failed to mark value flag as required: %v", err))
	}

	rootCmd.AddCommand(acceptCmd)
}

func runAccept(_ *cobra.Command, _ []string) error {
	cat := catalog.Category(acceptCategory)
	if !catalog.Valid(cat) {
		return fmt.Errorf("unknown category %q; valid categories: %v", acceptCategory, catalog.All())
	}

	_, _, engine, err := openStore()
	if err != nil {
		return err
	}

	if err := engine.RecordAcceptance(cat, acceptValue); err != nil {
		return fmt.Errorf("failed to record acceptance: %w", err)
	}
	fmt.Printf("Recorded %q for %s\n", acceptValue, cat)
	return nil
}
