package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/backup"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a resume from a JSON backup",
	Long:  "Validates the file against the resume record shape (id, title and data are required), then inserts it as a new record with a fresh id and reset timestamps. Existing records are never overwritten.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	_, st, _, err := openStore()
	if err != nil {
		return err
	}

	rec, err := backup.Import(st, content)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %q as %s\n", rec.Title, rec.ID)
	return nil
}
