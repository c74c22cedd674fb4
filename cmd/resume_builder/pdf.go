package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/backup"
	"github.com/jonathan/resume-builder/internal/render"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <id>",
	Short: "Print a resume to PDF",
	Long:  "Renders the record through its template and prints the markup to PDF with a headless browser. Requires Chrome/Chromium on the system.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPDF,
}

var (
	pdfOut     string
	pdfTimeout int
)

func init() {
	pdfCmd.Flags().StringVarP(&pdfOut, "out", "o", "", "Output PDF path (default: derived from the title)")
	pdfCmd.Flags().IntVar(&pdfTimeout, "timeout", 0, "Print timeout in seconds")

	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	_, st, _, err := openStore()
	if err != nil {
		return err
	}

	rec, err := st.Get(args[0])
	if err != nil {
		return err
	}

	body, err := render.HTML(rec)
	if err != nil {
		return err
	}

	printer := render.NewChromePrinter()
	if pdfTimeout > 0 {
		printer.Timeout = time.Duration(pdfTimeout) * time.Second
	}

	pdf, err := printer.Print(cmd.Context(), render.Document(rec.Title, body))
	if err != nil {
		return err
	}

	out := pdfOut
	if out == "" {
		out = backup.SanitizeTitle(rec.Title) + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(pdf))
	return nil
}
