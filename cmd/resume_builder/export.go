package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/backup"
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export resumes as JSON backups",
	Long:  "Writes the pretty-printed JSON backup of one record, or of every record with --all, into the export directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var (
	exportDir string
	exportAll bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Directory to write backups into")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every saved resume")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if !exportAll && len(args) == 0 {
		return fmt.Errorf("provide a record id or --all")
	}

	_, st, _, err := openStore()
	if err != nil {
		return err
	}

	if exportAll {
		records := st.List()
		if len(records) == 0 {
			fmt.Println("No saved resumes.")
			return nil
		}
		paths, err := backup.ExportAll(cmd.Context(), records, exportDir)
		if err != nil {
			return fmt.Errorf("bulk export failed: %w", err)
		}
		for _, path := range paths {
			fmt.Printf("Wrote %s\n", path)
		}
		return nil
	}

	rec, err := st.Get(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path, err := backup.ExportToDir(rec, exportDir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
