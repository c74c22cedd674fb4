package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved resumes",
	RunE:  runList,
}

var listLatest bool

func init() {
	listCmd.Flags().BoolVar(&listLatest, "latest", false, "Show only the most recently updated resume")

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	_, st, _, err := openStore()
	if err != nil {
		return err
	}

	if listLatest {
		rec, ok := st.MostRecentlyUpdated()
		if !ok {
			fmt.Println("No saved resumes.")
			return nil
		}
		fmt.Printf("%s  %s  (updated %s)\n", rec.ID, rec.Title, rec.UpdatedAt.Format("2006-01-02 15:04"))
		return nil
	}

	records := st.List()
	if len(records) == 0 {
		fmt.Println("No saved resumes.")
		return nil
	}

	w := os.Stdout
	for _, rec := range records {
		fmt.Fprintf(w, "%s  %-30s  created %s  updated %s\n",
			rec.ID, rec.Title,
			rec.CreatedAt.Format("2006-01-02"),
			rec.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
