package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the full record as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	_, st, _, err := openStore()
	if err != nil {
		return err
	}

	rec, err := st.Get(args[0])
	if err != nil {
		return err
	}

	if showJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize record: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintResume(&rec)
	return nil
}
