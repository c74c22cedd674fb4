package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a resume payload into the collection",
	Long:  "Reads a resume data payload from a JSON file and upserts it. Without --id a new record is created; with --id the existing record is updated in place.",
	RunE:  runSave,
}

var (
	saveFile     string
	saveID       string
	saveTemplate string
)

func init() {
	saveCmd.Flags().StringVarP(&saveFile, "file", "f", "", "Path to resume data JSON (required)")
	saveCmd.Flags().StringVar(&saveID, "id", "", "Existing record id to update")
	saveCmd.Flags().StringVar(&saveTemplate, "template", "", "Template id (template1, template2, template3)")

	if err := saveCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(saveCmd)
}

func runSave(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(saveFile)
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	var data types.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse payload JSON: %w", err)
	}

	// Field-level problems are advisory; the store accepts whatever it is given.
	if err := data.Validate(); err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintf(os.Stderr, "warning: field %s %s\n", f.Field, f.Message)
			}
		} else {
			return err
		}
	}

	if saveTemplate != "" && !types.ValidTemplate(saveTemplate) {
		return fmt.Errorf("unknown template %q", saveTemplate)
	}

	_, st, _, err := openStore()
	if err != nil {
		return err
	}

	result, err := st.Save(types.ResumeRecord{
		ID:       saveID,
		Data:     data,
		Template: saveTemplate,
	})
	if err != nil {
		return fmt.Errorf("save failed: %w", err)
	}

	if result.QuotaWarning {
		fmt.Fprintf(os.Stderr, "warning: storage is nearly full (%d bytes used); delete old resumes or export a backup\n", result.Usage)
	}
	fmt.Printf("Saved %q as %s\n", result.Record.Title, result.Record.ID)
	return nil
}
