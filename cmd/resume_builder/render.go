package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <id>",
	Short: "Render a resume to display markup",
	Long:  "Renders the record's payload through its template. Writes HTML to stdout or --out; --text prints a plain-text preview instead.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderOut  string
	renderText bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Write HTML to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderText, "text", false, "Print a plain-text preview")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
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

	if renderText {
		text, err := render.Text(body)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	doc := render.Document(rec.Title, body)
	if renderOut == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(renderOut, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}
	fmt.Printf("Wrote %s\n", renderOut)
	return nil
}
