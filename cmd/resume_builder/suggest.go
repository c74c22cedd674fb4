package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/observability"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Query field suggestions",
	Long:  "Returns ranked, deduplicated completions for a partial input, drawn from the static catalog plus recently used and custom values. Matched substrings are bracketed.",
	RunE:  runSuggest,
}

var (
	suggestCategory string
	suggestInput    string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestCategory, "category", "c", "", "Field category (required)")
	suggestCmd.Flags().StringVarP(&suggestInput, "input", "i", "", "Partial input; empty lists recent or catalog entries")

	if err := suggestCmd.MarkFlagRequired("category"); err != nil {
		panic(fmt.Sprintf("failed to mark category flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	cat := catalog.Category(suggestCategory)
	if !catalog.Valid(cat) {
		return fmt.Errorf("unknown category %q; valid categories: %v", suggestCategory, catalog.All())
	}

	_, _, engine, err := openStore()
	if err != nil {
		return err
	}

	results := engine.Query(suggestInput, cat)

	if rootVerbose {
		observability.NewPrinter(os.Stdout).PrintSuggestions(suggestInput, results)
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No matches found")
		return nil
	}
	for _, s := range results {
		fmt.Println(s.Text)
	}
	return nil
}
